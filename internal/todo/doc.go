// Package todo holds the in-memory task list: the Task record, the Store that
// owns it, and the validation rules applied to user input.
//
// # Identifiers
//
// Task IDs are positive integers issued sequentially starting at 1. The store
// keeps a counter that is always one greater than the highest ID ever issued,
// so IDs are never reused, even after the task holding them is deleted.
//
// # Validation
//
// Three rules guard user input:
//
//   - Title: must not be empty or whitespace only, and must be at most 200
//     characters. The length bound is measured on the raw input, before
//     trimming; the emptiness check uses the trimmed form.
//   - Description: optional, at most 1000 characters.
//   - Task ID: must parse as an integer and must name a task in the store.
//
// Lengths are counted in runes. Failures are reported as *ValidationError
// values that wrap one of ErrInvalidTitle, ErrInvalidDescription,
// ErrInvalidTaskID or ErrTaskNotFound; their Error text is meant to be shown
// to the user as is.
//
// # Snapshots
//
// Store.Snapshot renders the list as a JSON document:
//
//	{
//	  "schema_version": 1,
//	  "tasks": [
//	    {
//	      "id": 1,
//	      "title": "Task title",
//	      "description": "Optional description",
//	      "completed": false,
//	      "created_at": "2024-01-01T00:00:00Z"
//	    }
//	  ],
//	  "summary": {"total": 1, "completed": 0, "pending": 1}
//	}
//
// ValidateSnapshot checks such a document against an embedded JSON Schema.
package todo

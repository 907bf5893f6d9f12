package menu

import (
	"strings"

	"github.com/syedahafsa12/hackathon2/internal/todo"
)

const lineWidth = 60

func (s *Session) displayWelcome() {
	s.printf("\n%s\n", strings.Repeat("=", lineWidth))
	s.printf("%sWELCOME TO TODO APP\n", strings.Repeat(" ", 15))
	s.printf("%s\n\n", strings.Repeat("=", lineWidth))
}

func (s *Session) displayMenu() {
	s.printf("\n%s\n", strings.Repeat("-", lineWidth))
	s.printf("MAIN MENU\n")
	s.printf("%s\n", strings.Repeat("-", lineWidth))
	s.printf("1. Add Task\n")
	s.printf("2. View All Tasks\n")
	s.printf("3. Update Task\n")
	s.printf("4. Delete Task\n")
	s.printf("5. Mark Task as Complete/Incomplete\n")
	s.printf("6. Exit\n")
	s.printf("%s\n", strings.Repeat("-", lineWidth))
}

func (s *Session) displayGoodbye() {
	s.printf("\n%s\n", strings.Repeat("=", lineWidth))
	s.printf("Thank you for using Todo App! Goodbye!\n")
	s.printf("%s\n\n", strings.Repeat("=", lineWidth))
}

func (s *Session) printHeader(title string) {
	s.printf("\n%s\n", strings.Repeat("=", lineWidth))
	s.printf("%s\n", title)
	s.printf("%s\n", strings.Repeat("=", lineWidth))
}

func (s *Session) printTaskBox(task todo.Task) {
	s.printf("%s\n", strings.Repeat("-", lineWidth))
	s.printf("%s\n", task.Format(s.timeFormat))
	s.printf("%s\n", strings.Repeat("-", lineWidth))
}

func describe(description string) string {
	if description == "" {
		return todo.NoDescription
	}
	return description
}

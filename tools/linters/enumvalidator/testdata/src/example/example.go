package example

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "PENDING"
	TaskStatusCompleted TaskStatus = "COMPLETED"
)

type IssueTier string

const (
	IssueTierCritical IssueTier = "CRITICAL"
)

type Task struct {
	Status    TaskStatus
	IssueTier IssueTier
	Title     string
}

func bad() {
	t := &Task{}
	t.Status = "DONE" // want "enum field Status assigned string literal"

	_ = Task{
		IssueTier: "URGENT", // want "enum field IssueTier set from string literal"
		Title:     "Document the process",
	}

	_ = &Task{Status: "PENDING"} // want "enum field Status set from string literal"
}

func good() {
	t := &Task{}
	t.Status = TaskStatusCompleted // OK: using constant
	t.Title = "free text"          // OK: not an enum

	_ = Task{Status: TaskStatusPending, IssueTier: IssueTierCritical}
}

func alsoGood() {
	// OK: Variable, not literal
	status := TaskStatusPending
	t := &Task{Status: status}
	_ = t
}

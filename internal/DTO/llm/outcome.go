package llm

// Outcome is the result of one relay call: either Succeeded or Failed.
type Outcome interface {
	outcome()
}

// Succeeded carries the first completion choice's content.
type Succeeded struct {
	Answer string
}

// Failed carries the textual form of the upstream error.
type Failed struct {
	Message string
}

func (Succeeded) outcome() {}
func (Failed) outcome()    {}

package testutil

import (
	"strings"
	"sync"
)

// Message is one line emitted through RecordingOutput
type Message struct {
	Level string
	Text  string
}

// RecordingOutput implements types.Output by recording every message.
// Critical records the message and sets Exited instead of terminating.
type RecordingOutput struct {
	mu       sync.Mutex
	Messages []Message
	Exited   bool
}

func NewRecordingOutput() *RecordingOutput {
	return &RecordingOutput{}
}

func (r *RecordingOutput) record(level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, Message{Level: level, Text: msg})
}

func (r *RecordingOutput) Debug(msg string)   { r.record("debug", msg) }
func (r *RecordingOutput) Info(msg string)    { r.record("info", msg) }
func (r *RecordingOutput) Hint(msg string)    { r.record("hint", msg) }
func (r *RecordingOutput) Note(msg string)    { r.record("note", msg) }
func (r *RecordingOutput) Warning(msg string) { r.record("warning", msg) }
func (r *RecordingOutput) Error(msg string)   { r.record("error", msg) }

func (r *RecordingOutput) Critical(msg string) {
	r.record("critical", msg)
	r.mu.Lock()
	r.Exited = true
	r.mu.Unlock()
}

// ByLevel returns the texts recorded at level, in order.
func (r *RecordingOutput) ByLevel(level string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, m := range r.Messages {
		if m.Level == level {
			out = append(out, m.Text)
		}
	}
	return out
}

// Contains reports whether any message at level contains substr.
func (r *RecordingOutput) Contains(level, substr string) bool {
	for _, text := range r.ByLevel(level) {
		if strings.Contains(text, substr) {
			return true
		}
	}
	return false
}

// MockPrompter answers every question with Answer (or fails with Err) and
// records what was asked.
type MockPrompter struct {
	Answer    bool
	Err       error
	Questions []string
}

func (m *MockPrompter) AskYesNo(question string) (bool, error) {
	m.Questions = append(m.Questions, question)
	if m.Err != nil {
		return false, m.Err
	}
	return m.Answer, nil
}

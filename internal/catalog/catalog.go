// Package catalog holds the fixed set of onboarding questions. The
// catalog is built once at process start and never written to; every
// per-request variant of a question is a deep copy.
package catalog

// Option is one selectable answer on a question. SubOptions carry the
// taxonomy tree for the specialty question and are empty everywhere else.
type Option struct {
	Title      string   `json:"title"`
	Route      string   `json:"route"`
	Key        string   `json:"key"`
	SubOptions []Option `json:"subOptions,omitempty"`
}

// Question is one onboarding question template. Response is always empty
// on a template; it is filled only on transcript snapshots.
type Question struct {
	Prompt   string   `json:"prompt"`
	Progress int      `json:"progress"`
	Options  []Option `json:"options"`
	Response string   `json:"response"`
}

// byProgress indexes the seed questions for lookup.
var byProgress map[int]*Question

func init() {
	byProgress = make(map[int]*Question, len(seedQuestions))
	for i := range seedQuestions {
		q := &seedQuestions[i]
		byProgress[q.Progress] = q
	}
}

// Lookup returns a deep copy of the question at the given progress.
// The second return is false when no such question exists. Callers get
// a copy so injected options never reach the canonical templates.
func Lookup(progress int) (Question, bool) {
	q, ok := byProgress[progress]
	if !ok {
		return Question{}, false
	}
	return q.Clone(), true
}

// Terminal is the progress value of the last structured question.
const Terminal = 8

// Clone returns a deep copy of the question, options included.
func (q Question) Clone() Question {
	out := q
	out.Options = cloneOptions(q.Options)
	return out
}

func cloneOptions(opts []Option) []Option {
	if opts == nil {
		return nil
	}
	out := make([]Option, len(opts))
	for i, o := range opts {
		out[i] = o
		out[i].SubOptions = cloneOptions(o.SubOptions)
	}
	return out
}

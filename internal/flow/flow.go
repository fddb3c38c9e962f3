// Package flow decides which onboarding question comes next. The
// resolver is a pure function over the transcript so far plus a profile
// snapshot; it never fails and never touches storage.
package flow

import (
	"strings"

	"github.com/medscroll/onboarding/internal/catalog"
	"github.com/medscroll/onboarding/internal/taxonomy"
)

// Role answers that branch the flow. Matched exactly, as the client
// submits option titles verbatim.
const (
	RoleDoctor = "Doctor"
	RoleNurse  = "Nurse"
)

// TriviaOptionTitle is the terminal option that carries the routing key.
const TriviaOptionTitle = "General Trivia"

// Turn is the slice of a transcript entry the resolver reads.
type Turn struct {
	Progress int
	Response string
}

// ProfileSnapshot carries the durable profile state the flow branches
// on. It is passed in explicitly; the resolver holds no ambient state.
type ProfileSnapshot struct {
	HasDisplayName bool
}

// Input is everything one resolution needs.
type Input struct {
	// Transcript is the answer history, oldest first.
	Transcript []Turn

	// Profile is the user's profile at the time of the call.
	Profile ProfileSnapshot

	// Specialties is the taxonomy tree for the specialty questions.
	Specialties []taxonomy.Specialty

	// RoutingKey is attached to the General Trivia option on the
	// terminal question. Empty leaves the template key untouched.
	RoutingKey string
}

func (in Input) last() (Turn, bool) {
	if len(in.Transcript) == 0 {
		return Turn{}, false
	}
	return in.Transcript[len(in.Transcript)-1], true
}

func (in Input) secondToLast() (Turn, bool) {
	if len(in.Transcript) < 2 {
		return Turn{}, false
	}
	return in.Transcript[len(in.Transcript)-2], true
}

// transition is one row of the state machine: a predicate over the
// input and the question to present when it matches.
type transition struct {
	match func(in Input) bool
	next  func(in Input) catalog.Question
}

// transitions is evaluated top to bottom; the first match wins. The
// final row matches unconditionally, so resolution always terminates
// at the last question no matter how malformed the transcript is.
var transitions = []transition{
	{
		// Fresh user: always start at question 1.
		match: func(in Input) bool { _, ok := in.last(); return !ok },
		next:  func(in Input) catalog.Question { return question(1) },
	},
	{
		// Linear advance through the opening question.
		match: onProgress(func(p int) bool { return p < 2 }),
		next: func(in Input) catalog.Question {
			last, _ := in.last()
			return question(last.Progress + 1)
		},
	},
	{
		// After the acquisition question, skip the name question for
		// users whose profile already carries a display name.
		match: onProgress(func(p int) bool { return p == 2 }),
		next: func(in Input) catalog.Question {
			if in.Profile.HasDisplayName {
				return question(4)
			}
			return question(3)
		},
	},
	{
		match: onProgress(func(p int) bool { return p == 3 }),
		next:  func(in Input) catalog.Question { return question(4) },
	},
	{
		// Doctors pick a specialty from the taxonomy.
		match: onAnswer(4, RoleDoctor),
		next: func(in Input) catalog.Question {
			q := question(5)
			q.Options = taxonomy.Options(in.Specialties)
			return q
		},
	},
	{
		// Nurses skip specialty selection and get the free-text
		// specialization question.
		match: onAnswer(4, RoleNurse),
		next:  func(in Input) catalog.Question { return question(7) },
	},
	{
		// Doctor answered the specialty question: narrow to its
		// subspecialties. Title match is case-insensitive exact.
		match: func(in Input) bool {
			last, ok := in.last()
			if !ok || last.Progress != 5 {
				return false
			}
			prev, ok := in.secondToLast()
			return ok && prev.Response == RoleDoctor
		},
		next: func(in Input) catalog.Question {
			last, _ := in.last()
			q := question(6)
			q.Options = taxonomy.SubOptions(subspecialtiesOf(in.Specialties, last.Response))
			return q
		},
	},
	{
		match: onProgress(func(p int) bool { return p == 6 || p == 7 }),
		next:  terminalQuestion,
	},
	{
		// Terminal default. Covers p == 4 with a non-branching role,
		// repeated calls at the end, and anything unrecognised.
		match: func(in Input) bool { return true },
		next:  terminalQuestion,
	},
}

// Resolve returns the next question for the given input. It always
// returns a fresh copy; callers may mutate the result freely.
func Resolve(in Input) catalog.Question {
	for _, t := range transitions {
		if t.match(in) {
			return t.next(in)
		}
	}
	// Unreachable: the table ends with an unconditional row.
	return question(catalog.Terminal)
}

func onProgress(pred func(p int) bool) func(Input) bool {
	return func(in Input) bool {
		last, ok := in.last()
		return ok && pred(last.Progress)
	}
}

func onAnswer(progress int, response string) func(Input) bool {
	return func(in Input) bool {
		last, ok := in.last()
		return ok && last.Progress == progress && last.Response == response
	}
}

// question looks up a template copy, falling back to the terminal
// question for out-of-range progress values.
func question(progress int) catalog.Question {
	if q, ok := catalog.Lookup(progress); ok {
		return q
	}
	q, _ := catalog.Lookup(catalog.Terminal)
	return q
}

// terminalQuestion returns the last question with the routing key
// injected into the General Trivia option. The injection happens on the
// copy Lookup returned, never on the catalog template.
func terminalQuestion(in Input) catalog.Question {
	q := question(catalog.Terminal)
	if in.RoutingKey == "" {
		return q
	}
	for i := range q.Options {
		if q.Options[i].Title == TriviaOptionTitle {
			q.Options[i].Key = in.RoutingKey
		}
	}
	return q
}

func subspecialtiesOf(specs []taxonomy.Specialty, title string) []string {
	for _, sp := range specs {
		if strings.EqualFold(sp.Title, title) {
			return sp.Subspecialties
		}
	}
	return nil
}

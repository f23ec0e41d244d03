package poll

import "sort"

type ToggleResult int

const (
	Ignored ToggleResult = iota
	Added
	Removed
)

func (r ToggleResult) String() string {
	switch r {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "ignored"
	}
}

// Entry is one participant's selections, option indices in ascending order.
type Entry struct {
	Participant string `json:"participant"`
	Options     []int  `json:"options"`
}

type OptionCount struct {
	Option       Option
	Votes        int
	Participants []string
}

// Ledger maps participants to the set of option indices they selected.
// It is not safe for concurrent use; the lifecycle controller confines it to its dispatcher.
type Ledger struct {
	optionCount int
	votes       map[string]map[int]struct{}
}

func NewLedger(optionCount int) *Ledger {
	return &Ledger{
		optionCount: optionCount,
		votes:       make(map[string]map[int]struct{}),
	}
}

// ReplayLedger rebuilds a ledger by toggling every entry in, dropping indices out of range.
func ReplayLedger(optionCount int, entries []Entry) *Ledger {
	ledger := NewLedger(optionCount)
	for _, entry := range entries {
		for _, index := range entry.Options {
			if !ledger.Has(entry.Participant, index) {
				ledger.Toggle(entry.Participant, index)
			}
		}
	}
	return ledger
}

func (l *Ledger) Toggle(participant string, index int) ToggleResult {
	if participant == "" || index < 0 || index >= l.optionCount {
		return Ignored
	}

	selections, ok := l.votes[participant]
	if !ok {
		selections = make(map[int]struct{})
		l.votes[participant] = selections
	}

	if _, selected := selections[index]; selected {
		delete(selections, index)
		if len(selections) == 0 {
			delete(l.votes, participant)
		}
		return Removed
	}

	selections[index] = struct{}{}
	return Added
}

func (l *Ledger) Has(participant string, index int) bool {
	_, ok := l.votes[participant][index]
	return ok
}

func (l *Ledger) Selections(participant string) []int {
	selections := make([]int, 0, len(l.votes[participant]))
	for index := range l.votes[participant] {
		selections = append(selections, index)
	}
	sort.Ints(selections)
	return selections
}

func (l *Ledger) Participants() []string {
	participants := make([]string, 0, len(l.votes))
	for participant := range l.votes {
		participants = append(participants, participant)
	}
	sort.Strings(participants)
	return participants
}

func (l *Ledger) ParticipantCount() int {
	return len(l.votes)
}

// Pairs is the total number of (participant, option) selections.
func (l *Ledger) Pairs() int {
	total := 0
	for _, selections := range l.votes {
		total += len(selections)
	}
	return total
}

func (l *Ledger) Entries() []Entry {
	participants := l.Participants()
	entries := make([]Entry, 0, len(participants))
	for _, participant := range participants {
		entries = append(entries, Entry{Participant: participant, Options: l.Selections(participant)})
	}
	return entries
}

func (l *Ledger) Clear() {
	l.votes = make(map[string]map[int]struct{})
}

// Counts tallies the ledger against options, most votes first and ties in option order.
func (l *Ledger) Counts(options []Option) []OptionCount {
	counts := make([]OptionCount, 0, len(options))
	for _, option := range options {
		counts = append(counts, OptionCount{Option: option, Participants: []string{}})
	}

	for _, participant := range l.Participants() {
		for index := range l.votes[participant] {
			if index < 0 || index >= len(counts) {
				continue
			}
			counts[index].Votes++
			counts[index].Participants = append(counts[index].Participants, participant)
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Votes > counts[j].Votes
	})

	return counts
}

package form

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rivo/uniseg"

	"github.com/carson-networks/track-server/internal/service"
)

// MaxTitleLength is the longest title, in grapheme clusters, the form keeps.
const MaxTitleLength = 15

// ErrFormClosed is returned by Submit once the form was submitted or cancelled.
var ErrFormClosed = errors.New("form is closed")

// State is the lifecycle position of a form instance.
type State int

const (
	StateEmpty State = iota
	StateEditing
	StateSubmitted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateEditing:
		return "editing"
	case StateSubmitted:
		return "submitted"
	case StateCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Snapshot is a read-only copy of a form handed to subscribers.
type Snapshot struct {
	Title        string
	AmountString string
	Category     service.Category
	DateEnabled  bool
	Date         time.Time
	State        State
	TitleValid   bool
	AmountValid  bool
	FormValid    bool
}

// FormState holds the in-progress values for adding or editing one track.
// It is owned by a single caller and is not safe for concurrent use.
type FormState struct {
	validator *AmountValidator

	title        string
	amountString string
	category     service.Category
	dateEnabled  bool
	date         time.Time

	loading bool
	state   State

	nextListenerID int
	listeners      map[int]func(Snapshot)
}

// NewFormState returns an empty form with the given default category. The
// date defaults to now but is only used once enabled.
func NewFormState(validator *AmountValidator, category service.Category) *FormState {
	if !category.Valid() {
		category = service.CategoryPersonal
	}
	return &FormState{
		validator: validator,
		category:  category,
		date:      time.Now(),
		state:     StateEmpty,
		listeners: make(map[int]func(Snapshot)),
	}
}

func (f *FormState) Title() string              { return f.title }
func (f *FormState) AmountString() string       { return f.amountString }
func (f *FormState) Category() service.Category { return f.category }
func (f *FormState) DateEnabled() bool          { return f.dateEnabled }
func (f *FormState) Date() time.Time            { return f.date }
func (f *FormState) State() State               { return f.state }

// SetTitle replaces the title, cutting it to MaxTitleLength characters.
func (f *FormState) SetTitle(title string) {
	if f.closed() {
		return
	}
	f.title = truncateTitle(title)
	f.touch()
}

// EnterTitle appends text one character at a time, as if typed. A
// character is a grapheme cluster, so an emoji sequence is typed whole.
func (f *FormState) EnterTitle(text string) {
	state := -1
	for text != "" {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		f.SetTitle(f.title + cluster)
	}
}

// TypeAmount applies one edit to the amount field. Edits that would break
// the amount grammar are dropped unless the form is loading. It reports
// whether newValue was kept.
func (f *FormState) TypeAmount(newValue string) bool {
	if f.closed() {
		return false
	}
	if f.loading {
		f.amountString = newValue
	} else {
		f.amountString = f.validator.FilterKeystroke(f.amountString, newValue)
	}
	f.touch()
	return f.amountString == newValue
}

// EnterAmount appends text one character at a time, as if typed, and
// reports whether every keystroke was kept.
func (f *FormState) EnterAmount(text string) bool {
	accepted := true
	for _, r := range text {
		if !f.TypeAmount(f.amountString + string(r)) {
			accepted = false
		}
	}
	return accepted
}

func (f *FormState) SetCategory(category service.Category) {
	if f.closed() || !category.Valid() {
		return
	}
	f.category = category
	f.touch()
}

func (f *FormState) SetDateEnabled(enabled bool) {
	if f.closed() {
		return
	}
	f.dateEnabled = enabled
	f.touch()
}

func (f *FormState) SetDate(date time.Time) {
	if f.closed() {
		return
	}
	f.date = date
	f.touch()
}

func (f *FormState) TitleValid() bool {
	return strings.TrimSpace(f.title) != ""
}

func (f *FormState) AmountValid() bool {
	return f.validator.IsRowValid(f.amountString)
}

// FormValid gates submission: the amount grammar is enforced keystroke by
// keystroke, so only emptiness is checked here.
func (f *FormState) FormValid() bool {
	return f.TitleValid() && f.amountString != ""
}

// LoadFrom seeds every field from an existing track. Keystroke filtering is
// suspended while seeding so the formatted amount is never rejected.
func (f *FormState) LoadFrom(track service.Track) {
	if f.closed() {
		return
	}
	f.loading = true
	f.title = truncateTitle(track.Title)
	f.TypeAmount(f.validator.FormatForEdit(track.Amount))
	if track.Category.Valid() {
		f.category = track.Category
	}
	if track.Date != nil {
		f.dateEnabled = true
		f.date = *track.Date
	} else {
		f.dateEnabled = false
	}
	f.loading = false
	f.notify()
}

// CommitToNewRecord builds a track from the current values. The returned
// track has no ID; the store assigns one.
func (f *FormState) CommitToNewRecord() (service.Track, error) {
	if !f.TitleValid() {
		return service.Track{}, &service.ValidationError{Field: "title", Reason: "must be filled"}
	}
	if f.amountString == "" {
		return service.Track{}, &service.ValidationError{Field: "amount", Reason: "must be filled"}
	}

	amount, err := f.validator.Commit(f.amountString)
	if err != nil {
		return service.Track{}, err
	}

	track := service.Track{
		Title:    strings.TrimSpace(f.title),
		Amount:   amount,
		Category: f.category,
	}
	if f.dateEnabled {
		date := f.date
		track.Date = &date
	}
	return track, nil
}

// Submit commits the form and hands the track to persist. On success the
// form becomes Submitted; on any failure it stays open for editing.
func (f *FormState) Submit(ctx context.Context, persist func(context.Context, service.Track) error) error {
	if f.closed() {
		return ErrFormClosed
	}
	track, err := f.CommitToNewRecord()
	if err != nil {
		return err
	}
	if err := persist(ctx, track); err != nil {
		f.state = StateEditing
		f.notify()
		return err
	}
	f.state = StateSubmitted
	f.notify()
	return nil
}

// Cancel discards the form without persisting anything.
func (f *FormState) Cancel() {
	if f.closed() {
		return
	}
	f.state = StateCancelled
	f.notify()
}

// Subscribe registers fn to receive a snapshot after every change. The
// returned func removes the subscription.
func (f *FormState) Subscribe(fn func(Snapshot)) func() {
	id := f.nextListenerID
	f.nextListenerID++
	f.listeners[id] = fn
	return func() {
		delete(f.listeners, id)
	}
}

func (f *FormState) Snapshot() Snapshot {
	return Snapshot{
		Title:        f.title,
		AmountString: f.amountString,
		Category:     f.category,
		DateEnabled:  f.dateEnabled,
		Date:         f.date,
		State:        f.state,
		TitleValid:   f.TitleValid(),
		AmountValid:  f.AmountValid(),
		FormValid:    f.FormValid(),
	}
}

func (f *FormState) closed() bool {
	return f.state == StateSubmitted || f.state == StateCancelled
}

func (f *FormState) touch() {
	if f.loading {
		return
	}
	if f.state == StateEmpty {
		f.state = StateEditing
	}
	f.notify()
}

func (f *FormState) notify() {
	if len(f.listeners) == 0 {
		return
	}
	snapshot := f.Snapshot()
	for _, fn := range f.listeners {
		fn(snapshot)
	}
}

// truncateTitle keeps the first MaxTitleLength grapheme clusters of title.
func truncateTitle(title string) string {
	if uniseg.GraphemeClusterCount(title) <= MaxTitleLength {
		return title
	}
	rest := title
	state := -1
	for i := 0; i < MaxTitleLength; i++ {
		_, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
	}
	return title[:len(title)-len(rest)]
}

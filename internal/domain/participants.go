package domain

import "github.com/shopspring/decimal"

// ParticipantType identifies a pricing category of participant
type ParticipantType string

const (
	ParticipantAdult  ParticipantType = "adult"
	ParticipantChild  ParticipantType = "child"
	ParticipantSenior ParticipantType = "senior"
)

// ParticipantTypes lists all known participant types in pricing order
var ParticipantTypes = []ParticipantType{
	ParticipantAdult,
	ParticipantChild,
	ParticipantSenior,
}

// Participants holds the headcount of a booking per participant type
type Participants struct {
	Adults   int
	Children int
	Seniors  int
}

// Total returns the total number of participants
func (p Participants) Total() int {
	return p.Adults + p.Children + p.Seniors
}

// Equal returns true if every per-type count matches
func (p Participants) Equal(other Participants) bool {
	return p.Adults == other.Adults &&
		p.Children == other.Children &&
		p.Seniors == other.Seniors
}

// CountFor returns the headcount for the given participant type
func (p Participants) CountFor(t ParticipantType) int {
	switch t {
	case ParticipantAdult:
		return p.Adults
	case ParticipantChild:
		return p.Children
	case ParticipantSenior:
		return p.Seniors
	default:
		return 0
	}
}

// HasNegativeCount returns true if any per-type count is below zero
func (p Participants) HasNegativeCount() bool {
	return p.Adults < 0 || p.Children < 0 || p.Seniors < 0
}

// PriceTable maps a participant type to its unit price
// A type missing from the table has no price and cannot be booked
type PriceTable map[ParticipantType]decimal.Decimal

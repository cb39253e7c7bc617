package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParticipantsTotal(t *testing.T) {
	assert.Equal(t, 0, Participants{}.Total())
	assert.Equal(t, 6, Participants{Adults: 2, Children: 3, Seniors: 1}.Total())
}

func TestParticipantsEqual(t *testing.T) {
	p := Participants{Adults: 2, Children: 1}

	assert.True(t, p.Equal(Participants{Adults: 2, Children: 1}))
	assert.False(t, p.Equal(Participants{Adults: 2, Seniors: 1}))
	// Одинаковый итог, разный состав - не равны
	assert.False(t, p.Equal(Participants{Adults: 3}))
}

func TestParticipantsCountFor(t *testing.T) {
	p := Participants{Adults: 2, Children: 3, Seniors: 1}

	assert.Equal(t, 2, p.CountFor(ParticipantAdult))
	assert.Equal(t, 3, p.CountFor(ParticipantChild))
	assert.Equal(t, 1, p.CountFor(ParticipantSenior))
	assert.Equal(t, 0, p.CountFor(ParticipantType("unknown")))
}

func TestParticipantsHasNegativeCount(t *testing.T) {
	assert.False(t, Participants{Adults: 1}.HasNegativeCount())
	assert.True(t, Participants{Adults: 1, Children: -1}.HasNegativeCount())
	assert.True(t, Participants{Seniors: -5}.HasNegativeCount())
}

func TestActivityPriceTable(t *testing.T) {
	child := dec("20.00")
	a := &Activity{
		AdultPrice: dec("45.50"),
		ChildPrice: &child,
	}

	table := a.PriceTable()

	assert.Len(t, table, 2)
	assert.True(t, table[ParticipantAdult].Equal(dec("45.50")))
	assert.True(t, table[ParticipantChild].Equal(dec("20.00")))

	_, ok := table[ParticipantSenior]
	assert.False(t, ok, "senior price is not configured and must be absent")
}

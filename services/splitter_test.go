package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-formatter/models"
)

func TestSplitMessagesTwoMarkers(t *testing.T) {
	raw := "[25/3, 2:15 pm] Rental\nKharadi\n\n  2 BHK  \n[25/3, 2:20 pm]\nResale\nBaner\n"

	msgs := SplitMessages(raw)
	require.Len(t, msgs, 2)

	assert.Equal(t, "[25/3, 2:15 pm]", msgs[0].Header)
	assert.Equal(t, []string{"Rental", "Kharadi", "2 BHK"}, msgs[0].Lines)
	assert.Equal(t, "[25/3, 2:20 pm]", msgs[1].Header)
	assert.Equal(t, []string{"Resale", "Baner"}, msgs[1].Lines)
}

func TestSplitMessagesLeadingTextHasNoHeader(t *testing.T) {
	raw := "Forwarded listings\n[ 1/4 ,10:00 AM ]\nRental"

	msgs := SplitMessages(raw)
	require.Len(t, msgs, 2)
	assert.Equal(t, "", msgs[0].Header)
	assert.Equal(t, []string{"Forwarded listings"}, msgs[0].Lines)
	assert.Equal(t, "[ 1/4 ,10:00 AM ]", msgs[1].Header)
}

func TestSplitMessagesDropsEmptySegments(t *testing.T) {
	raw := "   \n[25/3, 2:15 pm]\n \n[25/3, 2:16 pm]\nResale"

	msgs := SplitMessages(raw)
	require.Len(t, msgs, 1)
	assert.Equal(t, "[25/3, 2:16 pm]", msgs[0].Header)

	assert.Empty(t, SplitMessages(""))
}

func TestSplitMessagesWithoutMarkers(t *testing.T) {
	msgs := SplitMessages("Rental\r\nWakad\r\n")
	require.Len(t, msgs, 1)
	assert.Equal(t, "", msgs[0].Header)
	assert.Equal(t, []string{"Rental", "Wakad"}, msgs[0].Lines)
}

func TestDropMaskedContacts(t *testing.T) {
	msgs := []models.Message{
		{Header: "[25/3, 2:15 pm]", Lines: []string{"Rental", "Call 9876543210*"}},
		{Header: "[25/3, 2:16 pm]", Lines: []string{"Resale", "Call 9876543210"}},
		{Header: "[25/3, 2:17 pm]", Lines: []string{"Rental", "98765*****"}},
		{Header: "[25/3, 2:18 pm]", Lines: []string{"Rental", "Rent 20K *negotiable"}},
	}

	kept, dropped := DropMaskedContacts(msgs)
	assert.Equal(t, 2, dropped)
	require.Len(t, kept, 2)
	assert.Equal(t, "[25/3, 2:16 pm]", kept[0].Header)
	assert.Equal(t, "[25/3, 2:18 pm]", kept[1].Header)
}

func TestNormaliseSpaces(t *testing.T) {
	assert.Equal(t, "[25/3, 2:15 pm]", normaliseSpaces("[25/3, 2:15 pm]"))
	assert.Equal(t, "2:15 pm", normaliseSpaces("2:15\u202fpm"))
	assert.Equal(t, "Semi Furnished", normaliseSpaces("Semi\u00a0Furnished"))
	assert.Equal(t, "a\tb\nc", normaliseSpaces("a\tb\nc"))
}

package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/dmitrijs2005/sentimeter/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestConsole_Streams(t *testing.T) {
	var out, errOut bytes.Buffer
	c := NewConsole(&out, &errOut)

	c.Notice("note")
	c.Failure("bad")
	c.Success("good")

	// Buffers are not terminals, so nothing is coloured.
	assert.Equal(t, "note\nbad\n", errOut.String())
	assert.Equal(t, "good\n", out.String())
}

func TestConsole_Report(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, &bytes.Buffer{})

	c.Report(models.NewAnalysis("t", models.RawPayload(`[[{"label":"LABEL_0","score":0.7},{"label":"LABEL_1","score":0.2},{"label":"LABEL_2","score":0.1}]]`)))

	assert.Contains(t, out.String(), "Result: [[")
	assert.Contains(t, out.String(), "positive 0.100 | neutral 0.200 | negative 0.700 -> negative")
}

func TestConsole_ReportUnparsedPayload(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, &bytes.Buffer{})

	c.Report(models.NewAnalysis("t", models.RawPayload(`{"weird":true}`)))

	assert.Equal(t, "Result: {\"weird\":true}\n", out.String())
}

func TestConsole_History(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, &bytes.Buffer{})

	c.History(nil)
	assert.Contains(t, out.String(), "No analyses recorded yet.")

	out.Reset()
	a := models.NewAnalysis("hello", models.RawPayload(`[[{"label":"positive","score":1}]]`))
	a.CreatedAt = time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
	c.History([]models.Analysis{a})
	assert.Contains(t, out.String(), `2024-01-02 03:04:05  "hello"`)
	assert.Contains(t, out.String(), "-> positive")
}

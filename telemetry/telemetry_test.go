package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTimingCollector(t *testing.T) {
	t.Run("RecordsStagesInCompletionOrder", func(t *testing.T) {
		c := NewTimingCollector()

		stopDecode := c.Start("decode")
		stopDecode()
		stopPrint := c.Start("print")
		stopPrint()

		assert.Equal(t, []string{"decode", "print"}, c.Stages())
	})

	t.Run("ReportIncludesTotal", func(t *testing.T) {
		c := NewTimingCollector()
		stop := c.Start("decode")
		stop()

		var buf bytes.Buffer
		c.Report(&buf)

		assert.Contains(t, buf.String(), "decode")
		assert.Contains(t, buf.String(), "total")
	})
}

func TestFromContext(t *testing.T) {
	t.Run("MissingCollectorIsNoop", func(t *testing.T) {
		c := FromContext(context.Background())
		stop := c.Start("anything")
		stop()

		var buf bytes.Buffer
		c.Report(&buf)
		assert.Equal(t, "", buf.String())
	})

	t.Run("RoundTrip", func(t *testing.T) {
		c := NewTimingCollector()
		ctx := WithCollector(context.Background(), c)

		stop := FromContext(ctx).Start("decode")
		stop()

		assert.Equal(t, []string{"decode"}, c.Stages())
	})
}

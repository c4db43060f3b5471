package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/hearts/internal/model"
)

func TestLogSinkWritesEventAndParams(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(slog.New(slog.NewJSONHandler(&buf, nil)))

	sink.Emit(context.Background(), model.Event{
		Type:      model.EventMoonRulesChanged,
		Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Params: map[string]string{
			model.ParamPreviousMoonRule: "Old",
			model.ParamSelectedMoonRule: "New",
		},
	})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "analytics event", line["msg"])
	assert.Equal(t, "moon_rules_changed", line["event"])
	assert.Equal(t, "Old", line["previous_moon_rule"])
	assert.Equal(t, "New", line["selected_moon_rule"])
}

func TestMemorySinkRecordsInOrder(t *testing.T) {
	sink := NewMemorySink()

	sink.Emit(context.Background(), model.Event{Type: model.EventNextRound})
	sink.Emit(context.Background(), model.Event{Type: model.EventPreviousRound})

	assert.Equal(t, []model.EventType{model.EventNextRound, model.EventPreviousRound}, sink.Types())
	assert.Len(t, sink.Events(), 2)
}

package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/bnema/spacesync/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestQueuedStateUpdate_BypassesDebounce(t *testing.T) {
	space := entity.NewSpace(1, "perm-1", nil, testNow)

	tests := []struct {
		name     string
		payload  entity.UpdatePayload
		priority entity.UpdatePriority
		want     bool
	}{
		{"rename", entity.SpaceUpdatedPayload{SpaceID: "1", Changes: entity.SpaceChanges{Name: strPtr("Work")}}, entity.PriorityNormal, true},
		{"empty rename is still a rename", entity.SpaceUpdatedPayload{SpaceID: "1", Changes: entity.SpaceChanges{Name: strPtr("")}}, entity.PriorityNormal, true},
		{"url-only space update", entity.SpaceUpdatedPayload{SpaceID: "1", Changes: entity.SpaceChanges{URLs: []string{"A"}}}, entity.PriorityNormal, false},
		{"critical lifecycle", entity.SpaceLifecyclePayload{Event: entity.UpdateSpaceClosed, Space: space}, entity.PriorityCritical, true},
		{"high lifecycle", entity.SpaceLifecyclePayload{Event: entity.UpdateSpaceCreated, Space: space}, entity.PriorityHigh, false},
		{"tabs changed", entity.TabsChangedPayload{SpaceID: "1"}, entity.PriorityNormal, false},
		{"spaces replaced", entity.SpacesReplacedPayload{}, entity.PriorityNormal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := entity.NewUpdate("u1", tt.payload, tt.priority, testNow)
			assert.Equal(t, tt.want, u.BypassesDebounce())
			assert.Equal(t, tt.payload.UpdateType(), u.Type)
		})
	}
}

func TestCoalesceKey_PerSpace(t *testing.T) {
	a := entity.NewUpdate("1", entity.TabsChangedPayload{PermanentID: "a"}, entity.PriorityNormal, testNow)
	b := entity.NewUpdate("2", entity.TabsChangedPayload{PermanentID: "b"}, entity.PriorityNormal, testNow)
	a2 := entity.NewUpdate("3", entity.TabsChangedPayload{PermanentID: "a"}, entity.PriorityNormal, testNow)

	assert.NotEqual(t, a.CoalesceKey(), b.CoalesceKey())
	assert.Equal(t, a.CoalesceKey(), a2.CoalesceKey())
	assert.Equal(t, "update:x", entity.QueuedStateUpdate{ID: "x"}.CoalesceKey())
}

func TestSpacesReplacedPayload_WithRename(t *testing.T) {
	old := entity.NewSpace(1, "perm-1", nil, testNow)
	other := entity.NewSpace(2, "perm-2", nil, testNow)
	p := entity.SpacesReplacedPayload{Spaces: []entity.Space{old, other}}

	patched := p.WithRename(entity.SpaceUpdatedPayload{
		PermanentID: "perm-1",
		Changes:     entity.SpaceChanges{Name: strPtr("Fresh")},
		Version:     5,
	})

	assert.Equal(t, "Fresh", patched.Spaces[0].Name)
	assert.Equal(t, int64(5), patched.Spaces[0].Version)
	assert.Equal(t, other, patched.Spaces[1])
	assert.NotEqual(t, "Fresh", p.Spaces[0].Name, "original snapshot must not be mutated")

	newer := p.WithRename(entity.SpaceUpdatedPayload{PermanentID: "perm-1", Changes: entity.SpaceChanges{Name: strPtr("Stale")}, Version: 1})
	assert.Equal(t, old.Name, newer.Spaces[0].Name, "an older rename must not patch a newer record")
}

func TestQueuedStateUpdate_JSON(t *testing.T) {
	u := entity.NewUpdate("u1", entity.SpaceUpdatedPayload{
		SpaceID: "1", PermanentID: "perm-1", Changes: entity.SpaceChanges{Name: strPtr("Work")}, Version: 3,
	}, entity.PriorityCritical, testNow)

	data, err := json.Marshal(u)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "space_updated", decoded["type"])
	assert.Equal(t, "critical", decoded["priority"])
	payload := decoded["payload"].(map[string]any)
	assert.Equal(t, "Work", payload["changes"].(map[string]any)["name"])
}

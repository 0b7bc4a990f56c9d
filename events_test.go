package gateway

import (
	"encoding/json"
	"testing"
)

// Embedded entity payloads decode their fields at the top level, matching the
// wire bodies; the add/update member events additionally lift guild_id beside
// the embedded entity.
func TestPayloadDecoding(t *testing.T) {
	t.Run("entity body events", func(t *testing.T) {
		var mc MessageCreate
		if err := json.Unmarshal([]byte(`{"id": "5", "channel_id": "6", "content": "hey", "author": {"id": "7", "username": "ana"}}`), &mc); err != nil {
			t.Fatal(err)
		}
		if mc.ID != "5" || mc.Author.Username != "ana" {
			t.Errorf("MessageCreate = %+v", mc)
		}
	})

	t.Run("sibling guild_id next to embedded entity", func(t *testing.T) {
		var gma GuildMemberAdd
		if err := json.Unmarshal([]byte(`{"guild_id": "10", "nick": "new kid", "user": {"id": "11", "username": "bo"}}`), &gma); err != nil {
			t.Fatal(err)
		}
		if gma.GuildID != "10" || gma.Nick != "new kid" || gma.User == nil || gma.User.ID != "11" {
			t.Errorf("GuildMemberAdd = %+v", gma)
		}
	})

	t.Run("reference pair events", func(t *testing.T) {
		var grd GuildRoleDelete
		if err := json.Unmarshal([]byte(`{"guild_id": "20", "role_id": "21"}`), &grd); err != nil {
			t.Fatal(err)
		}
		if grd.GuildID != "20" || grd.RoleID != "21" {
			t.Errorf("GuildRoleDelete = %+v", grd)
		}
	})
}

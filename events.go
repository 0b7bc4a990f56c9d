package gateway

import "time"

// Payload schemas, one struct per Kind. Each decodes directly from the raw
// event body, so wire events whose body is a single entity embed that entity's
// reference type. Listeners receive these inside an Event view and must copy
// out anything they want to keep past their own invocation.

// Log is synthesized by the client itself, not received on the wire.
type Log struct {
	Severity int    `json:"severity"`
	Message  string `json:"message"`
}

type Ready struct {
	SessionID string `json:"session_id"`
	ShardID   int    `json:"shard_id,omitempty"`
}

type Resumed struct {
	SessionID string `json:"session_id"`
}

type ChannelCreate struct{ Channel }

type ChannelUpdate struct{ Channel }

type ChannelDelete struct{ Channel }

type ChannelPinsUpdate struct {
	GuildID          Snowflake `json:"guild_id,omitempty"`
	ChannelID        Snowflake `json:"channel_id"`
	LastPinTimestamp time.Time `json:"last_pin_timestamp,omitzero"`
}

type ThreadCreate struct{ Channel }

type ThreadUpdate struct{ Channel }

type ThreadDelete struct {
	ID       Snowflake `json:"id"`
	GuildID  Snowflake `json:"guild_id"`
	ParentID Snowflake `json:"parent_id"`
	Type     int       `json:"type"`
}

type ThreadListSync struct {
	GuildID    Snowflake      `json:"guild_id"`
	ChannelIDs []Snowflake    `json:"channel_ids,omitempty"`
	Threads    []Channel      `json:"threads"`
	Members    []ThreadMember `json:"members"`
}

type ThreadMemberUpdate struct{ ThreadMember }

type ThreadMembersUpdate struct {
	ID               Snowflake      `json:"id"`
	GuildID          Snowflake      `json:"guild_id"`
	MemberCount      int            `json:"member_count"`
	AddedMembers     []ThreadMember `json:"added_members,omitempty"`
	RemovedMemberIDs []Snowflake    `json:"removed_member_ids,omitempty"`
}

type GuildCreate struct{ Guild }

type GuildUpdate struct{ Guild }

type GuildDelete struct {
	ID          Snowflake `json:"id"`
	Unavailable bool      `json:"unavailable,omitempty"`
}

type GuildBanAdd struct {
	GuildID Snowflake `json:"guild_id"`
	User    User      `json:"user"`
}

type GuildBanRemove struct {
	GuildID Snowflake `json:"guild_id"`
	User    User      `json:"user"`
}

type GuildEmojisUpdate struct {
	GuildID Snowflake `json:"guild_id"`
	Emojis  []Emoji   `json:"emojis"`
}

type GuildStickersUpdate struct {
	GuildID  Snowflake `json:"guild_id"`
	Stickers []Sticker `json:"stickers"`
}

type GuildIntegrationsUpdate struct {
	GuildID Snowflake `json:"guild_id"`
}

type GuildJoinRequestDelete struct {
	GuildID Snowflake `json:"guild_id"`
	UserID  Snowflake `json:"user_id"`
}

type GuildMemberAdd struct {
	Member
	GuildID Snowflake `json:"guild_id"`
}

type GuildMemberRemove struct {
	GuildID Snowflake `json:"guild_id"`
	User    User      `json:"user"`
}

type GuildMemberUpdate struct {
	Member
	GuildID Snowflake `json:"guild_id"`
}

type GuildMembersChunk struct {
	GuildID    Snowflake `json:"guild_id"`
	Members    []Member  `json:"members"`
	ChunkIndex int       `json:"chunk_index"`
	ChunkCount int       `json:"chunk_count"`
}

type GuildRoleCreate struct {
	GuildID Snowflake `json:"guild_id"`
	Role    Role      `json:"role"`
}

type GuildRoleUpdate struct {
	GuildID Snowflake `json:"guild_id"`
	Role    Role      `json:"role"`
}

type GuildRoleDelete struct {
	GuildID Snowflake `json:"guild_id"`
	RoleID  Snowflake `json:"role_id"`
}

type GuildScheduledEventCreate struct{ ScheduledEvent }

type GuildScheduledEventUpdate struct{ ScheduledEvent }

type GuildScheduledEventDelete struct{ ScheduledEvent }

type GuildScheduledEventUserAdd struct {
	EventID Snowflake `json:"guild_scheduled_event_id"`
	UserID  Snowflake `json:"user_id"`
	GuildID Snowflake `json:"guild_id"`
}

type GuildScheduledEventUserRemove struct {
	EventID Snowflake `json:"guild_scheduled_event_id"`
	UserID  Snowflake `json:"user_id"`
	GuildID Snowflake `json:"guild_id"`
}

type IntegrationCreate struct {
	Integration
	GuildID Snowflake `json:"guild_id"`
}

type IntegrationUpdate struct {
	Integration
	GuildID Snowflake `json:"guild_id"`
}

type IntegrationDelete struct {
	ID            Snowflake `json:"id"`
	GuildID       Snowflake `json:"guild_id"`
	ApplicationID Snowflake `json:"application_id,omitempty"`
}

type InviteCreate struct {
	ChannelID Snowflake `json:"channel_id"`
	GuildID   Snowflake `json:"guild_id,omitempty"`
	Code      string    `json:"code"`
	Inviter   *User     `json:"inviter,omitempty"`
	MaxAge    int       `json:"max_age,omitempty"`
	MaxUses   int       `json:"max_uses,omitempty"`
	Temporary bool      `json:"temporary,omitempty"`
}

type InviteDelete struct {
	ChannelID Snowflake `json:"channel_id"`
	GuildID   Snowflake `json:"guild_id,omitempty"`
	Code      string    `json:"code"`
}

type MessageCreate struct{ Message }

type MessageUpdate struct{ Message }

type MessageDelete struct {
	ID        Snowflake `json:"id"`
	ChannelID Snowflake `json:"channel_id"`
	GuildID   Snowflake `json:"guild_id,omitempty"`
}

type MessageDeleteBulk struct {
	IDs       []Snowflake `json:"ids"`
	ChannelID Snowflake   `json:"channel_id"`
	GuildID   Snowflake   `json:"guild_id,omitempty"`
}

type MessageReactionAdd struct {
	UserID    Snowflake `json:"user_id"`
	ChannelID Snowflake `json:"channel_id"`
	MessageID Snowflake `json:"message_id"`
	GuildID   Snowflake `json:"guild_id,omitempty"`
	Member    *Member   `json:"member,omitempty"`
	Emoji     Emoji     `json:"emoji"`
}

type MessageReactionRemove struct {
	UserID    Snowflake `json:"user_id"`
	ChannelID Snowflake `json:"channel_id"`
	MessageID Snowflake `json:"message_id"`
	GuildID   Snowflake `json:"guild_id,omitempty"`
	Emoji     Emoji     `json:"emoji"`
}

type MessageReactionRemoveAll struct {
	ChannelID Snowflake `json:"channel_id"`
	MessageID Snowflake `json:"message_id"`
	GuildID   Snowflake `json:"guild_id,omitempty"`
}

type MessageReactionRemoveEmoji struct {
	ChannelID Snowflake `json:"channel_id"`
	MessageID Snowflake `json:"message_id"`
	GuildID   Snowflake `json:"guild_id,omitempty"`
	Emoji     Emoji     `json:"emoji"`
}

type PresenceUpdate struct {
	User    User      `json:"user"`
	GuildID Snowflake `json:"guild_id,omitempty"`
	Status  string    `json:"status"`
}

type StageInstanceCreate struct{ StageInstance }

type StageInstanceUpdate struct{ StageInstance }

type StageInstanceDelete struct{ StageInstance }

type TypingStart struct {
	ChannelID Snowflake `json:"channel_id"`
	GuildID   Snowflake `json:"guild_id,omitempty"`
	UserID    Snowflake `json:"user_id"`
	Timestamp int64     `json:"timestamp"`
}

type UserUpdate struct{ User }

type VoiceStateUpdate struct{ VoiceState }

type VoiceServerUpdate struct {
	Token    string    `json:"token"`
	GuildID  Snowflake `json:"guild_id"`
	Endpoint string    `json:"endpoint,omitempty"`
}

type WebhooksUpdate struct {
	GuildID   Snowflake `json:"guild_id"`
	ChannelID Snowflake `json:"channel_id"`
}

type ApplicationCommandCreate struct{ Command }

type ApplicationCommandUpdate struct{ Command }

type ApplicationCommandDelete struct{ Command }

// Voice subsystem payloads. Synthesized in-process; the originating Event
// carries a nil Connection.

type VoiceReady struct {
	GuildID Snowflake `json:"guild_id"`
}

type VoiceReceive struct {
	UserID Snowflake `json:"user_id"`
	Audio  []byte    `json:"audio"`
}

type VoiceUserTalking struct {
	UserID       Snowflake `json:"user_id"`
	TalkingFlags uint8     `json:"talking_flags"`
}

type VoiceClientSpeaking struct {
	UserID Snowflake `json:"user_id"`
	SSRC   uint32    `json:"ssrc"`
}

type VoiceClientDisconnect struct {
	UserID Snowflake `json:"user_id"`
}

type VoiceBufferSend struct {
	BufferSize int `json:"buffer_size"`
}

type VoiceTrackMarker struct {
	TrackMeta string `json:"track_meta"`
}

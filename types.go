package gateway

import "time"

// Snowflake is an entity identifier. The wire encodes them as decimal
// strings.
type Snowflake string

// User is a reference to an account.
type User struct {
	ID            Snowflake `json:"id"`
	Username      string    `json:"username"`
	Discriminator string    `json:"discriminator,omitempty"`
	Bot           bool      `json:"bot,omitempty"`
}

// Member is a user's membership in one guild.
type Member struct {
	User     *User       `json:"user,omitempty"`
	Nick     string      `json:"nick,omitempty"`
	Roles    []Snowflake `json:"roles,omitempty"`
	JoinedAt time.Time   `json:"joined_at,omitzero"`
}

type Role struct {
	ID          Snowflake `json:"id"`
	Name        string    `json:"name"`
	Color       int       `json:"color,omitempty"`
	Position    int       `json:"position,omitempty"`
	Permissions string    `json:"permissions,omitempty"`
	Managed     bool      `json:"managed,omitempty"`
	Mentionable bool      `json:"mentionable,omitempty"`
}

// Channel doubles as the thread reference; threads are channels on the wire.
type Channel struct {
	ID       Snowflake `json:"id"`
	GuildID  Snowflake `json:"guild_id,omitempty"`
	Name     string    `json:"name,omitempty"`
	Type     int       `json:"type"`
	Position int       `json:"position,omitempty"`
	ParentID Snowflake `json:"parent_id,omitempty"`
	Topic    string    `json:"topic,omitempty"`
	NSFW     bool      `json:"nsfw,omitempty"`
}

type Guild struct {
	ID          Snowflake `json:"id"`
	Name        string    `json:"name,omitempty"`
	OwnerID     Snowflake `json:"owner_id,omitempty"`
	MemberCount int       `json:"member_count,omitempty"`
	Unavailable bool      `json:"unavailable,omitempty"`
}

type Message struct {
	ID        Snowflake `json:"id"`
	ChannelID Snowflake `json:"channel_id"`
	GuildID   Snowflake `json:"guild_id,omitempty"`
	Author    User      `json:"author,omitzero"`
	Content   string    `json:"content,omitempty"`
	Timestamp time.Time `json:"timestamp,omitzero"`
	Pinned    bool      `json:"pinned,omitempty"`
}

type Emoji struct {
	ID       Snowflake `json:"id,omitempty"`
	Name     string    `json:"name"`
	Animated bool      `json:"animated,omitempty"`
}

type Sticker struct {
	ID   Snowflake `json:"id"`
	Name string    `json:"name"`
}

type VoiceState struct {
	GuildID   Snowflake `json:"guild_id,omitempty"`
	ChannelID Snowflake `json:"channel_id,omitempty"`
	UserID    Snowflake `json:"user_id"`
	SessionID string    `json:"session_id,omitempty"`
	Deaf      bool      `json:"deaf,omitempty"`
	Mute      bool      `json:"mute,omitempty"`
	SelfDeaf  bool      `json:"self_deaf,omitempty"`
	SelfMute  bool      `json:"self_mute,omitempty"`
}

type ScheduledEvent struct {
	ID          Snowflake `json:"id"`
	GuildID     Snowflake `json:"guild_id"`
	ChannelID   Snowflake `json:"channel_id,omitempty"`
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"scheduled_start_time,omitzero"`
}

type StageInstance struct {
	ID        Snowflake `json:"id"`
	GuildID   Snowflake `json:"guild_id"`
	ChannelID Snowflake `json:"channel_id"`
	Topic     string    `json:"topic,omitempty"`
}

type ThreadMember struct {
	ID       Snowflake `json:"id,omitempty"`
	UserID   Snowflake `json:"user_id,omitempty"`
	JoinedAt time.Time `json:"join_timestamp,omitzero"`
}

type Integration struct {
	ID   Snowflake `json:"id"`
	Name string    `json:"name,omitempty"`
	Type string    `json:"type,omitempty"`
}

// Command is a reference to a registered application command.
type Command struct {
	ID            Snowflake `json:"id"`
	ApplicationID Snowflake `json:"application_id,omitempty"`
	GuildID       Snowflake `json:"guild_id,omitempty"`
	Name          string    `json:"name"`
}

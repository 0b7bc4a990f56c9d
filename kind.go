package gateway

// Kind identifies one category of gateway event and the payload schema that
// goes with it. Values match the upstream wire names where the event arrives
// over a gateway connection; refined and synthesized kinds (interaction
// components, voice subsystem) use library-local names.
type Kind string

// Gateway event kinds.
const (
	KindLog     Kind = "LOG"
	KindReady   Kind = "READY"
	KindResumed Kind = "RESUMED"

	KindChannelCreate     Kind = "CHANNEL_CREATE"
	KindChannelUpdate     Kind = "CHANNEL_UPDATE"
	KindChannelDelete     Kind = "CHANNEL_DELETE"
	KindChannelPinsUpdate Kind = "CHANNEL_PINS_UPDATE"

	KindThreadCreate        Kind = "THREAD_CREATE"
	KindThreadUpdate        Kind = "THREAD_UPDATE"
	KindThreadDelete        Kind = "THREAD_DELETE"
	KindThreadListSync      Kind = "THREAD_LIST_SYNC"
	KindThreadMemberUpdate  Kind = "THREAD_MEMBER_UPDATE"
	KindThreadMembersUpdate Kind = "THREAD_MEMBERS_UPDATE"

	KindGuildCreate             Kind = "GUILD_CREATE"
	KindGuildUpdate             Kind = "GUILD_UPDATE"
	KindGuildDelete             Kind = "GUILD_DELETE"
	KindGuildBanAdd             Kind = "GUILD_BAN_ADD"
	KindGuildBanRemove          Kind = "GUILD_BAN_REMOVE"
	KindGuildEmojisUpdate       Kind = "GUILD_EMOJIS_UPDATE"
	KindGuildStickersUpdate     Kind = "GUILD_STICKERS_UPDATE"
	KindGuildIntegrationsUpdate Kind = "GUILD_INTEGRATIONS_UPDATE"
	KindGuildJoinRequestDelete  Kind = "GUILD_JOIN_REQUEST_DELETE"

	KindGuildMemberAdd    Kind = "GUILD_MEMBER_ADD"
	KindGuildMemberRemove Kind = "GUILD_MEMBER_REMOVE"
	KindGuildMemberUpdate Kind = "GUILD_MEMBER_UPDATE"
	KindGuildMembersChunk Kind = "GUILD_MEMBERS_CHUNK"

	KindGuildRoleCreate Kind = "GUILD_ROLE_CREATE"
	KindGuildRoleUpdate Kind = "GUILD_ROLE_UPDATE"
	KindGuildRoleDelete Kind = "GUILD_ROLE_DELETE"

	KindGuildScheduledEventCreate     Kind = "GUILD_SCHEDULED_EVENT_CREATE"
	KindGuildScheduledEventUpdate     Kind = "GUILD_SCHEDULED_EVENT_UPDATE"
	KindGuildScheduledEventDelete     Kind = "GUILD_SCHEDULED_EVENT_DELETE"
	KindGuildScheduledEventUserAdd    Kind = "GUILD_SCHEDULED_EVENT_USER_ADD"
	KindGuildScheduledEventUserRemove Kind = "GUILD_SCHEDULED_EVENT_USER_REMOVE"

	KindIntegrationCreate Kind = "INTEGRATION_CREATE"
	KindIntegrationUpdate Kind = "INTEGRATION_UPDATE"
	KindIntegrationDelete Kind = "INTEGRATION_DELETE"

	// KindInteractionCreate covers plain application command interactions.
	// Component and autocomplete interactions arriving on the same wire event
	// are refined to the three kinds below; see Registry.Dispatch.
	KindInteractionCreate Kind = "INTERACTION_CREATE"
	KindButtonClick       Kind = "BUTTON_CLICK"
	KindSelectClick       Kind = "SELECT_CLICK"
	KindAutocomplete      Kind = "AUTOCOMPLETE"

	KindInviteCreate Kind = "INVITE_CREATE"
	KindInviteDelete Kind = "INVITE_DELETE"

	KindMessageCreate     Kind = "MESSAGE_CREATE"
	KindMessageUpdate     Kind = "MESSAGE_UPDATE"
	KindMessageDelete     Kind = "MESSAGE_DELETE"
	KindMessageDeleteBulk Kind = "MESSAGE_DELETE_BULK"

	KindMessageReactionAdd         Kind = "MESSAGE_REACTION_ADD"
	KindMessageReactionRemove      Kind = "MESSAGE_REACTION_REMOVE"
	KindMessageReactionRemoveAll   Kind = "MESSAGE_REACTION_REMOVE_ALL"
	KindMessageReactionRemoveEmoji Kind = "MESSAGE_REACTION_REMOVE_EMOJI"

	KindPresenceUpdate Kind = "PRESENCE_UPDATE"

	KindStageInstanceCreate Kind = "STAGE_INSTANCE_CREATE"
	KindStageInstanceUpdate Kind = "STAGE_INSTANCE_UPDATE"
	KindStageInstanceDelete Kind = "STAGE_INSTANCE_DELETE"

	KindTypingStart Kind = "TYPING_START"
	KindUserUpdate  Kind = "USER_UPDATE"

	KindVoiceStateUpdate  Kind = "VOICE_STATE_UPDATE"
	KindVoiceServerUpdate Kind = "VOICE_SERVER_UPDATE"
	KindWebhooksUpdate    Kind = "WEBHOOKS_UPDATE"

	KindApplicationCommandCreate Kind = "APPLICATION_COMMAND_CREATE"
	KindApplicationCommandUpdate Kind = "APPLICATION_COMMAND_UPDATE"
	KindApplicationCommandDelete Kind = "APPLICATION_COMMAND_DELETE"
)

// Voice subsystem kinds. These are synthesized in-process by a voice
// connection rather than received on a gateway shard, so their events carry
// a nil Connection.
const (
	KindVoiceReady            Kind = "VOICE_READY"
	KindVoiceReceive          Kind = "VOICE_RECEIVE"
	KindVoiceUserTalking      Kind = "VOICE_USER_TALKING"
	KindVoiceClientSpeaking   Kind = "VOICE_CLIENT_SPEAKING"
	KindVoiceClientDisconnect Kind = "VOICE_CLIENT_DISCONNECT"
	KindVoiceBufferSend       Kind = "VOICE_BUFFER_SEND"
	KindVoiceTrackMarker      Kind = "VOICE_TRACK_MARKER"
)

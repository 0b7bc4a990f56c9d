package gateway

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// InteractionType is the wire discriminator for an interaction.
type InteractionType int

const (
	InteractionPing               InteractionType = 1
	InteractionApplicationCommand InteractionType = 2
	InteractionMessageComponent   InteractionType = 3
	InteractionAutocomplete       InteractionType = 4
)

// Component types carried in a message-component interaction's data.
const (
	ComponentActionRow  = 1
	ComponentButton     = 2
	ComponentSelectMenu = 3
)

// classifyInteraction refines an INTERACTION_CREATE raw body to the kind of
// its own chain. Uses field probes on the raw bytes so classification never
// pays for a full decode.
func classifyInteraction(raw []byte) Kind {
	switch InteractionType(gjson.GetBytes(raw, "type").Int()) {
	case InteractionMessageComponent:
		if gjson.GetBytes(raw, "data.component_type").Int() == ComponentButton {
			return KindButtonClick
		}
		return KindSelectClick
	case InteractionAutocomplete:
		return KindAutocomplete
	default:
		return KindInteractionCreate
	}
}

// ParamType tags the value held by a Param.
type ParamType int

const (
	ParamAbsent ParamType = iota
	ParamString
	ParamInteger
	ParamBoolean
	ParamNumber
	ParamUser
	ParamChannel
	ParamRole
	ParamAttachment
)

// Param is the value of one named command parameter. The zero Param is the
// absent value. Accessors return false when the param holds a different type,
// so listeners never need to switch on ParamType for the common lookups.
type Param struct {
	typ     ParamType
	str     string
	integer int64
	boolean bool
	number  float64
	id      Snowflake
}

// Type returns the tag identifying what the param holds.
func (p Param) Type() ParamType { return p.typ }

// Absent reports whether the param holds no value.
func (p Param) Absent() bool { return p.typ == ParamAbsent }

// String returns the string value, or false if the param is not a string.
func (p Param) String() (string, bool) {
	return p.str, p.typ == ParamString
}

// Int returns the integer value, or false if the param is not an integer.
func (p Param) Int() (int64, bool) {
	return p.integer, p.typ == ParamInteger
}

// Bool returns the boolean value, or false if the param is not a boolean.
func (p Param) Bool() (bool, bool) {
	return p.boolean, p.typ == ParamBoolean
}

// Float returns the numeric value, or false if the param is not a number.
func (p Param) Float() (float64, bool) {
	return p.number, p.typ == ParamNumber
}

// ID returns the referenced entity for user, channel, role and attachment
// params, or false for every other type.
func (p Param) ID() (Snowflake, bool) {
	switch p.typ {
	case ParamUser, ParamChannel, ParamRole, ParamAttachment:
		return p.id, true
	default:
		return "", false
	}
}

// ParameterResolver is the capability shared by the interaction family:
// look up a named command parameter. Each member answers according to its own
// semantics — only plain application commands carry named options, so the
// component and autocomplete kinds always resolve to the absent Param.
//
// The capability is deliberately independent of the reply-identity data on
// Interaction; a future interaction kind can take either without the other.
type ParameterResolver interface {
	Parameter(name string) Param
}

// OptionType is the wire discriminator for a command option's value.
type OptionType int

const (
	OptionSubCommand      OptionType = 1
	OptionSubCommandGroup OptionType = 2
	OptionString          OptionType = 3
	OptionInteger         OptionType = 4
	OptionBoolean         OptionType = 5
	OptionUser            OptionType = 6
	OptionChannel         OptionType = 7
	OptionRole            OptionType = 8
	OptionMentionable     OptionType = 9
	OptionNumber          OptionType = 10
	OptionAttachment      OptionType = 11
)

// CommandOption is one option of an invoked application command.
type CommandOption struct {
	Name    string          `json:"name"`
	Type    OptionType      `json:"type"`
	Value   json.RawMessage `json:"value,omitempty"`
	Focused bool            `json:"focused,omitempty"`
	Options []CommandOption `json:"options,omitempty"`
}

// param converts the option's raw value to a typed Param. Malformed or
// unconvertible values resolve to absent rather than erroring: by the time a
// listener asks for a parameter, the event has already decoded and delivery
// must not fail on one bad option.
func (o CommandOption) param() Param {
	if len(o.Value) == 0 {
		return Param{}
	}
	switch o.Type {
	case OptionString:
		var s string
		if json.Unmarshal(o.Value, &s) == nil {
			return Param{typ: ParamString, str: s}
		}
	case OptionInteger:
		var n int64
		if json.Unmarshal(o.Value, &n) == nil {
			return Param{typ: ParamInteger, integer: n}
		}
	case OptionBoolean:
		var b bool
		if json.Unmarshal(o.Value, &b) == nil {
			return Param{typ: ParamBoolean, boolean: b}
		}
	case OptionNumber:
		var f float64
		if json.Unmarshal(o.Value, &f) == nil {
			return Param{typ: ParamNumber, number: f}
		}
	case OptionUser, OptionChannel, OptionRole, OptionAttachment:
		var id Snowflake
		if json.Unmarshal(o.Value, &id) != nil {
			return Param{}
		}
		switch o.Type {
		case OptionUser:
			return Param{typ: ParamUser, id: id}
		case OptionChannel:
			return Param{typ: ParamChannel, id: id}
		case OptionRole:
			return Param{typ: ParamRole, id: id}
		default:
			return Param{typ: ParamAttachment, id: id}
		}
	}
	return Param{}
}

// Interaction holds the identity fields shared by the whole interaction
// family. ID, Token, ApplicationID and the channel/guild references are what
// a REST collaborator needs to build reply, edit and delete requests without
// re-parsing the raw payload.
type Interaction struct {
	ID            Snowflake       `json:"id"`
	ApplicationID Snowflake       `json:"application_id"`
	Type          InteractionType `json:"type"`
	GuildID       Snowflake       `json:"guild_id,omitempty"`
	ChannelID     Snowflake       `json:"channel_id,omitempty"`
	Member        *Member         `json:"member,omitempty"`
	User          *User           `json:"user,omitempty"`
	Token         string          `json:"token"`
	Version       int             `json:"version,omitempty"`
	Message       *Message        `json:"message,omitempty"`
}

// CommandData is the data block of a command or autocomplete interaction.
type CommandData struct {
	ID      Snowflake       `json:"id"`
	Name    string          `json:"name"`
	Type    int             `json:"type,omitempty"`
	Options []CommandOption `json:"options,omitempty"`
}

// ComponentData is the data block of a message-component interaction.
type ComponentData struct {
	CustomID      string   `json:"custom_id"`
	ComponentType int      `json:"component_type"`
	Values        []string `json:"values,omitempty"`
}

// InteractionCreate is a plain application command invocation.
type InteractionCreate struct {
	Interaction
	Data CommandData `json:"data"`
}

// Parameter resolves name against the invoked command's option list,
// returning the absent Param when no option with that name exists.
func (ic InteractionCreate) Parameter(name string) Param {
	for _, opt := range ic.Data.Options {
		if opt.Name == name {
			return opt.param()
		}
	}
	return Param{}
}

// ButtonClick is a button component interaction.
type ButtonClick struct {
	Interaction
	Data ComponentData `json:"data"`
}

// Parameter always returns the absent Param: buttons carry no command
// options.
func (ButtonClick) Parameter(string) Param { return Param{} }

// CustomID returns the clicked button's custom id.
func (b ButtonClick) CustomID() string { return b.Data.CustomID }

// SelectClick is a select-menu component interaction.
type SelectClick struct {
	Interaction
	Data ComponentData `json:"data"`
}

// Parameter always returns the absent Param: select menus carry no command
// options.
func (SelectClick) Parameter(string) Param { return Param{} }

// CustomID returns the select menu's custom id.
func (s SelectClick) CustomID() string { return s.Data.CustomID }

// Values returns the selected option values.
func (s SelectClick) Values() []string { return s.Data.Values }

// Autocomplete is a request to supply completion choices for a command
// option the user is still typing.
type Autocomplete struct {
	Interaction
	Data CommandData `json:"data"`
}

// Parameter always returns the absent Param: autocomplete requests carry
// partial options, not resolved command parameters.
func (Autocomplete) Parameter(string) Param { return Param{} }

// Focused returns the option currently being typed, or false if the request
// carries none.
func (a Autocomplete) Focused() (CommandOption, bool) {
	for _, opt := range a.Data.Options {
		if opt.Focused {
			return opt, true
		}
	}
	return CommandOption{}, false
}

var (
	_ ParameterResolver = InteractionCreate{}
	_ ParameterResolver = ButtonClick{}
	_ ParameterResolver = SelectClick{}
	_ ParameterResolver = Autocomplete{}
)

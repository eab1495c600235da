package command

import (
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

// Register adds the command to the commands available to the client, so that it autocompletes. Nothing
// is added while the command is disabled.
func (d *Debug) Register(pk *packet.AvailableCommands) {
	if !d.Enabled {
		return
	}

	// Single-value soft enums model the sub-commands, like dragonfly encodes cmd.SubCommand.
	setEnumIdx := findOrCreateDynamicEnum(pk, "startpos:set", []string{"set"})
	getEnumIdx := findOrCreateDynamicEnum(pk, "startpos:get", []string{"get"})
	profileEnumIdx := findOrCreateDynamicEnum(pk, "startpos:profile", d.Tuning.Names())

	overloads := []protocol.CommandOverload{
		{Parameters: []protocol.CommandParameter{
			softEnumParam("set", setEnumIdx),
			softEnumParam("profile", profileEnumIdx),
			normalParam("forward", protocol.CommandArgTypeFloat),
			normalParam("side", protocol.CommandArgTypeFloat),
			normalParam("up", protocol.CommandArgTypeFloat),
		}},
		{Parameters: []protocol.CommandParameter{
			softEnumParam("get", getEnumIdx),
			softEnumParam("profile", profileEnumIdx),
		}},
	}

	cmd := protocol.Command{
		Name:                     Name,
		Description:              "Tune the start position of projectile previews",
		AliasesOffset:            ^uint32(0),
		ChainedSubcommandOffsets: []uint16{},
		Overloads:                overloads,
	}
	for i, c := range pk.Commands {
		if c.Name == Name {
			pk.Commands[i] = cmd
			return
		}
	}
	pk.Commands = append(pk.Commands, cmd)
}

func findOrCreateDynamicEnum(pk *packet.AvailableCommands, enumType string, options []string) uint32 {
	for i, e := range pk.DynamicEnums {
		if e.Type == enumType {
			pk.DynamicEnums[i].Values = options
			return uint32(i)
		}
	}
	pk.DynamicEnums = append(pk.DynamicEnums, protocol.DynamicEnum{Type: enumType, Values: options})
	return uint32(len(pk.DynamicEnums) - 1)
}

func softEnumParam(name string, enumIndex uint32) protocol.CommandParameter {
	return protocol.CommandParameter{
		Name: name,
		Type: protocol.CommandArgValid | protocol.CommandArgSoftEnum | enumIndex,
	}
}

func normalParam(name string, pType uint32) protocol.CommandParameter {
	return protocol.CommandParameter{
		Name: name,
		Type: protocol.CommandArgValid | pType,
	}
}

// Package script builds command streams from Lua scenario scripts.
//
// A script creates a Game with Game.new, appends commands through its
// methods and returns it:
//
//	local game = Game.new("duel")
//	game:character("fighter", "Rex", 10)
//	game:item("weapon", "Rex", "Sword", 5)
//	game:attack("Rex", "Bob", "Sword")
//	return game
package script

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"
	"github.com/louisbranch/rpgsim/internal/game/command"
)

const gameTypeName = "rpgsim.Game"

// Script is the command stream built by one Lua script.
type Script struct {
	Name     string
	Commands []command.Command
}

// LoadFile runs the Lua script at path and returns the commands it built.
func LoadFile(path string) (*Script, error) {
	state := newState()
	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	script, err := run(state)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(script.Name) == "" {
		script.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return script, nil
}

// LoadString runs Lua source under chunk name and returns the commands it built.
func LoadString(name, source string) (*Script, error) {
	state := newState()
	if err := lua.LoadBuffer(state, source, name, ""); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	script, err := run(state)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(script.Name) == "" {
		script.Name = name
	}
	return script, nil
}

// Lines returns the text form of every command in order.
func (s *Script) Lines() []string {
	lines := make([]string, 0, len(s.Commands))
	for _, cmd := range s.Commands {
		lines = append(lines, cmd.Line)
	}
	return lines
}

func newState() *lua.State {
	state := lua.NewState()
	lua.OpenLibraries(state)

	lua.NewMetaTable(state, gameTypeName)
	state.NewTable()
	lua.SetFunctions(state, gameMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)

	state.NewTable()
	lua.SetFunctions(state, gameConstructor, 0)
	state.SetGlobal("Game")
	return state
}

func run(state *lua.State) (*Script, error) {
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run lua: %w", err)
	}
	if state.TypeOf(-1) != lua.TypeUserData {
		state.Pop(1)
		return nil, fmt.Errorf("script must return Game")
	}
	ud := state.ToUserData(-1)
	state.Pop(1)
	script, ok := ud.(*Script)
	if !ok || script == nil {
		return nil, fmt.Errorf("script returned invalid Game")
	}
	return script, nil
}

var gameConstructor = []lua.RegistryFunction{
	{Name: "new", Function: gameNew},
}

var gameMethods = []lua.RegistryFunction{
	{Name: "character", Function: gameCharacter},
	{Name: "item", Function: gameItem},
	{Name: "attack", Function: gameAttack},
	{Name: "cast", Function: gameCast},
	{Name: "drink", Function: gameDrink},
	{Name: "say", Function: gameSay},
	{Name: "show_characters", Function: gameShowCharacters},
	{Name: "show_items", Function: gameShowItems},
}

func gameNew(state *lua.State) int {
	name := lua.OptString(state, 1, "")
	state.PushUserData(&Script{Name: name})
	lua.SetMetaTableNamed(state, gameTypeName)
	return 1
}

func gameCharacter(state *lua.State) int {
	script := checkGame(state)
	class := lua.CheckString(state, 2)
	name := checkName(state, 3)
	hp := lua.CheckInteger(state, 4)
	script.add(command.NewCreateCharacter(class, name, hp))
	return 0
}

func gameItem(state *lua.State) int {
	script := checkGame(state)
	kind := lua.CheckString(state, 2)
	owner := checkName(state, 3)
	name := checkName(state, 4)
	value := lua.CheckInteger(state, 5)
	targets := optionalStrings(state, 6)
	script.add(command.NewCreateItem(kind, owner, name, value, targets))
	return 0
}

func gameAttack(state *lua.State) int {
	script := checkGame(state)
	script.add(command.NewAttack(checkName(state, 2), checkName(state, 3), lua.CheckString(state, 4)))
	return 0
}

func gameCast(state *lua.State) int {
	script := checkGame(state)
	script.add(command.NewCast(checkName(state, 2), checkName(state, 3), lua.CheckString(state, 4)))
	return 0
}

func gameDrink(state *lua.State) int {
	script := checkGame(state)
	script.add(command.NewDrink(checkName(state, 2), checkName(state, 3), lua.CheckString(state, 4)))
	return 0
}

func gameSay(state *lua.State) int {
	script := checkGame(state)
	speaker := checkName(state, 2)
	words := strings.Fields(lua.CheckString(state, 3))
	if len(words) == 0 {
		lua.ArgumentError(state, 3, "words expected")
		return 0
	}
	script.add(command.NewDialogue(speaker, words))
	return 0
}

func gameShowCharacters(state *lua.State) int {
	script := checkGame(state)
	script.add(command.NewShowCharacters())
	return 0
}

func gameShowItems(state *lua.State) int {
	script := checkGame(state)
	script.add(command.NewShowItems(lua.CheckString(state, 2), checkName(state, 3)))
	return 0
}

func (s *Script) add(cmd command.Command) {
	s.Commands = append(s.Commands, cmd)
}

func checkGame(state *lua.State) *Script {
	ud := lua.CheckUserData(state, 1, gameTypeName)
	if script, ok := ud.(*Script); ok && script != nil {
		return script
	}
	lua.ArgumentError(state, 1, "Game expected")
	return nil
}

// checkName reads a single-word name argument so the command keeps a
// parseable text form.
func checkName(state *lua.State, index int) string {
	name := lua.CheckString(state, index)
	if name == "" || len(strings.Fields(name)) != 1 || strings.ContainsAny(name, "[]") {
		lua.ArgumentError(state, index, "single word name expected")
	}
	return name
}

func optionalStrings(state *lua.State, index int) []string {
	if state.IsNoneOrNil(index) {
		return nil
	}
	lua.CheckType(state, index, lua.TypeTable)
	index = state.AbsIndex(index)
	var out []string
	for i := 1; ; i++ {
		state.RawGetInt(index, i)
		if state.IsNil(-1) {
			state.Pop(1)
			break
		}
		value, ok := state.ToString(-1)
		state.Pop(1)
		if !ok || strings.ContainsAny(value, ",[]") {
			lua.ArgumentError(state, index, "target names must be plain strings")
		}
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, value)
		}
	}
	return out
}

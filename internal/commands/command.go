package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeNew    Type = "new"
	TypeSave   Type = "save"
	TypeOpen   Type = "open"
	TypeDelete Type = "delete"
	TypeList   Type = "list"
	TypeToggle Type = "toggle"
	TypeCopy   Type = "copy"
	TypePane   Type = "pane"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// SaveArgs.Title is empty when saving under the current document's title.
type SaveArgs struct {
	Title string
}

type OpenArgs struct {
	Title string
}

type DeleteArgs struct {
	Title string
}

type ToggleArgs struct {
	Index int
}

type PaneArgs struct {
	Name string
}

type Command struct {
	Type   Type
	Raw    string
	Save   *SaveArgs
	Open   *OpenArgs
	Delete *DeleteArgs
	Toggle *ToggleArgs
	Pane   *PaneArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeNew, TypeList, TypeCopy:
		if len(args) > 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes no arguments", head)}
		}
		return Command{Type: Type(head), Raw: input}, nil
	case TypeSave:
		return Command{Type: TypeSave, Raw: input, Save: &SaveArgs{Title: strings.Join(args, " ")}}, nil
	case TypeOpen:
		title, err := requireTitle(head, args)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeOpen, Raw: input, Open: &OpenArgs{Title: title}}, nil
	case TypeDelete:
		title, err := requireTitle(head, args)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeDelete, Raw: input, Delete: &DeleteArgs{Title: title}}, nil
	case TypeToggle:
		return parseToggle(input, args)
	case TypePane:
		return parsePane(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func requireTitle(head string, args []string) (string, error) {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return "", &CommandError{Code: ErrCodeInvalidArgument, Message: head + " requires a title"}
	}
	return title, nil
}

func parseToggle(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "toggle requires an item number"}
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid item number: %s", args[0])}
	}
	return Command{Type: TypeToggle, Raw: raw, Toggle: &ToggleArgs{Index: n}}, nil
}

func parsePane(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "pane requires debug or preview"}
	}
	name := strings.ToLower(args[0])
	switch name {
	case "debug", "preview":
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown pane: %s", args[0])}
	}
	return Command{Type: TypePane, Raw: raw, Pane: &PaneArgs{Name: name}}, nil
}

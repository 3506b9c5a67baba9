package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/new", TypeNew},
		{"save groceries", TypeSave},
		{"/save", TypeSave},
		{"open weekly plan", TypeOpen},
		{"delete weekly plan", TypeDelete},
		{"LIST", TypeList},
		{"/toggle 3", TypeToggle},
		{"copy", TypeCopy},
		{"pane preview", TypePane},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseArguments(t *testing.T) {
	cmd, err := Parse("/open  weekly   plan ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Open.Title != "weekly plan" {
		t.Fatalf("unexpected open title: %q", cmd.Open.Title)
	}

	cmd, err = Parse("toggle 2")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Toggle.Index != 2 {
		t.Fatalf("unexpected toggle index: %d", cmd.Toggle.Index)
	}

	cmd, err = Parse("save")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Save.Title != "" {
		t.Fatalf("expected empty save title, got %q", cmd.Save.Title)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		code ErrorCode
	}{
		{"", ErrCodeEmptyInput},
		{"/", ErrCodeEmptyInput},
		{"/unknown do x", ErrCodeUnknownCommand},
		{"open", ErrCodeInvalidArgument},
		{"delete  ", ErrCodeInvalidArgument},
		{"toggle", ErrCodeInvalidArgument},
		{"toggle zero", ErrCodeInvalidArgument},
		{"toggle 0", ErrCodeInvalidArgument},
		{"pane sideways", ErrCodeInvalidArgument},
		{"list all", ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != tc.code {
			t.Fatalf("parse %q: expected %s, got %v", tc.in, tc.code, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/toggle 4")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Toggle: func(a ToggleArgs) (Result, error) {
			called = true
			if a.Index != 4 {
				t.Fatalf("unexpected index: %d", a.Index)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("list")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}

package repl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iw2rmb/promptbox/buffer"
)

var ErrUnknownKey = errors.New("unknown key")

type KeyKind uint8

const (
	KeyText KeyKind = iota
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyEnter // newline inside the submission
	KeySubmit
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
)

var keyNames = map[string]KeyKind{
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"enter":     KeyEnter,
	"submit":    KeySubmit,
	"left":      KeyLeft,
	"right":     KeyRight,
	"up":        KeyUp,
	"down":      KeyDown,
	"home":      KeyHome,
	"end":       KeyEnd,
}

var kindNames = [...]string{
	KeyEscape:    "Escape",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyEnter:     "Enter",
	KeySubmit:    "Submit",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyHome:      "Home",
	KeyEnd:       "End",
}

// Key is one keystroke. Text is set only for KeyText.
type Key struct {
	Kind  KeyKind
	Text  string
	Shift bool
	Alt   bool
}

func (k Key) String() string {
	if k.Kind == KeyText {
		return strings.ReplaceAll(k.Text, "{", "{{")
	}
	var sb strings.Builder
	sb.WriteByte('{')
	if k.Alt {
		sb.WriteString("Alt+")
	}
	if k.Shift {
		sb.WriteString("Shift+")
	}
	sb.WriteString(kindNames[k.Kind])
	sb.WriteByte('}')
	return sb.String()
}

// ParseKeys parses a key script. Plain characters are typed; braced names
// such as {Escape}, {Shift+Left} or {Alt+Shift+Down} are keys. Names are
// case-insensitive. "{{" types a literal brace.
func ParseKeys(script string) ([]Key, error) {
	var keys []Key
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			keys = append(keys, Key{Kind: KeyText, Text: text.String()})
			text.Reset()
		}
	}

	for i := 0; i < len(script); {
		c := script[i]
		if c != '{' {
			text.WriteByte(c)
			i++
			continue
		}
		if strings.HasPrefix(script[i:], "{{") {
			text.WriteByte('{')
			i += 2
			continue
		}
		end := strings.IndexByte(script[i:], '}')
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated %q", ErrUnknownKey, script[i:])
		}
		k, err := parseKeyName(script[i+1 : i+end])
		if err != nil {
			return nil, err
		}
		flush()
		keys = append(keys, k)
		i += end + 1
	}
	flush()
	return keys, nil
}

func parseKeyName(name string) (Key, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(name)), "+")
	var k Key
	for _, mod := range parts[:len(parts)-1] {
		switch strings.TrimSpace(mod) {
		case "shift":
			k.Shift = true
		case "alt":
			k.Alt = true
		default:
			return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
		}
	}
	kind, ok := keyNames[strings.TrimSpace(parts[len(parts)-1])]
	if !ok {
		return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	k.Kind = kind
	return k, nil
}

// SendKeys replays keystrokes against the current submission. Only KeySubmit
// blocks.
func (w *Window) SendKeys(ctx context.Context, keys ...Key) error {
	for _, k := range keys {
		if err := w.sendKey(ctx, k); err != nil {
			return err
		}
	}
	return nil
}

// SendScript parses script with ParseKeys and sends the result.
func (w *Window) SendScript(ctx context.Context, script string) error {
	keys, err := ParseKeys(script)
	if err != nil {
		return err
	}
	return w.SendKeys(ctx, keys...)
}

func (w *Window) sendKey(ctx context.Context, k Key) error {
	b := w.buf
	switch k.Kind {
	case KeyText:
		b.InsertText(k.Text)
	case KeyEscape:
		b.CollapseSelection()
	case KeyBackspace:
		b.DeleteBackward()
	case KeyDelete:
		b.DeleteForward()
	case KeyEnter:
		b.InsertNewline()
	case KeySubmit:
		return w.Submit(ctx)
	default:
		m, ok := keyMove(k)
		if !ok {
			return fmt.Errorf("%w: %v", ErrUnknownKey, k)
		}
		b.Move(m)
	}
	return nil
}

// keyMove maps navigation keys to buffer moves. Alt alone moves by word;
// Alt+Shift grows a box.
func keyMove(k Key) (buffer.Move, bool) {
	m := buffer.Move{Unit: buffer.MoveGrapheme, Extend: k.Shift, Block: k.Shift && k.Alt}
	switch k.Kind {
	case KeyLeft:
		m.Dir = buffer.DirLeft
	case KeyRight:
		m.Dir = buffer.DirRight
	case KeyUp:
		m.Dir = buffer.DirUp
	case KeyDown:
		m.Dir = buffer.DirDown
	case KeyHome:
		m.Unit, m.Dir = buffer.MoveLine, buffer.DirHome
	case KeyEnd:
		m.Unit, m.Dir = buffer.MoveLine, buffer.DirEnd
	default:
		return buffer.Move{}, false
	}
	if k.Alt && !k.Shift && (k.Kind == KeyLeft || k.Kind == KeyRight) {
		m.Unit = buffer.MoveWord
	}
	return m, true
}

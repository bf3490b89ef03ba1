package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MeKo-Tech/paletteedit/internal/color"
	"github.com/MeKo-Tech/paletteedit/internal/control"
	"github.com/MeKo-Tech/paletteedit/internal/edit"
	"github.com/MeKo-Tech/paletteedit/internal/undo"
)

// scriptHost carries the mutable collaborators an edit script drives.
type scriptHost struct {
	session   *control.Session
	selection *scriptSelection
	history   *undo.History
}

// scriptSelection is a mutable SelectionSource for script runs.
type scriptSelection struct {
	indices []int
	cursor  int
	hasCur  bool
}

func (s *scriptSelection) SelectedIndices() []int { return s.indices }

func (s *scriptSelection) CursorEntry() (int, bool) { return s.cursor, s.hasCur }

// runScript executes edit-script lines against the session. Supported
// commands, one per line ('#' starts a comment):
//
//	select 0,2,5      choose the picked entries
//	cursor 3          set the fallback entry used when nothing is selected
//	space rgb|hsv|hsl switch the active color space
//	mode abs|rel      switch between absolute and relative editing
//	color #rrggbb[aa] absolute full-color edit of every pick
//	set <ch> <value>  absolute single-channel edit (value in channel units)
//	adjust <ch> <d>   relative edit by delta d
//	label <name>      operation label for subsequent edits
//	tick              fire one coalescing tick
//	undo / redo       step the undo history
func runScript(h *scriptHost, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}
		if err := runLine(h, line); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	return nil
}

func runLine(h *scriptHost, line string) error {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "select":
		if len(args) != 1 {
			return fmt.Errorf("select wants one comma-separated index list")
		}
		indices, err := parseIndexList(args[0])
		if err != nil {
			return err
		}
		h.selection.indices = indices
		h.session.OnSelectionChanged()
		return nil

	case "cursor":
		if len(args) != 1 {
			return fmt.Errorf("cursor wants one index")
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid cursor index %q: %w", args[0], err)
		}
		h.selection.cursor = i
		h.selection.hasCur = true
		h.session.OnSelectionChanged()
		return nil

	case "space":
		if len(args) != 1 {
			return fmt.Errorf("space wants rgb, hsv, or hsl")
		}
		sp, err := color.ParseSpace(args[0])
		if err != nil {
			return err
		}
		h.session.SetSpace(sp)
		return nil

	case "mode":
		if len(args) != 1 {
			return fmt.Errorf("mode wants abs or rel")
		}
		switch args[0] {
		case "abs", "absolute":
			h.session.SetMode(edit.Absolute)
		case "rel", "relative":
			h.session.SetMode(edit.Relative)
		default:
			return fmt.Errorf("unknown mode %q", args[0])
		}
		return nil

	case "color":
		if len(args) != 1 {
			return fmt.Errorf("color wants one hex color")
		}
		c, err := color.ParseHex(args[0])
		if err != nil {
			return err
		}
		h.session.SetColor(color.FromRGBA(c))
		return nil

	case "set":
		ch, value, err := channelArg(h, args)
		if err != nil {
			return err
		}
		payload, err := payloadFor(h.session, ch, value)
		if err != nil {
			return err
		}
		h.session.SetChannel(ch, payload)
		return nil

	case "adjust":
		ch, delta, err := channelArg(h, args)
		if err != nil {
			return err
		}
		h.session.AdjustChannel(ch, delta)
		return nil

	case "label":
		if len(args) != 1 {
			return fmt.Errorf("label wants one name")
		}
		h.session.SetLabel(args[0])
		return nil

	case "tick":
		h.session.Tick()
		return nil

	case "undo":
		return h.history.Undo()

	case "redo":
		return h.history.Redo()
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func channelArg(h *scriptHost, args []string) (color.Channel, float64, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("want channel and value")
	}
	ch, err := color.ParseChannel(h.session.Controller().Editor().Space(), args[0])
	if err != nil {
		return 0, 0, err
	}
	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid value %q: %w", args[1], err)
	}
	return ch, v, nil
}

// payloadFor builds the absolute-edit payload the way a slider row would:
// the first picked entry's own color in the active space, with the edited
// channel overwritten. Channel units are 0-255 for RGB and alpha, degrees
// for hue, and 0-1 for S/V/L.
func payloadFor(s *control.Session, ch color.Channel, value float64) (color.Color, error) {
	picks := s.Picks()
	indices := picks.Indices()
	base := color.RGBA{A: 255}
	if len(indices) > 0 {
		base = s.Controller().Live().Entry(indices[0])
	}

	switch s.Controller().Editor().Space() {
	case color.SpaceHSV:
		hsv := color.RGBToHSV(base)
		switch ch {
		case color.Hue:
			hsv.H = value
		case color.Saturation:
			hsv.S = value
		case color.Value:
			hsv.V = value
		case color.Alpha:
			hsv.A = color.ClampU8(int(value))
		default:
			return color.Color{}, fmt.Errorf("channel %s is not an hsv channel", ch)
		}
		return color.FromHSV(hsv.H, hsv.S, hsv.V, hsv.A), nil

	case color.SpaceHSL:
		hsl := color.RGBToHSL(base)
		switch ch {
		case color.Hue:
			hsl.H = value
		case color.Saturation:
			hsl.S = value
		case color.Lightness:
			hsl.L = value
		case color.Alpha:
			hsl.A = color.ClampU8(int(value))
		default:
			return color.Color{}, fmt.Errorf("channel %s is not an hsl channel", ch)
		}
		return color.FromHSL(hsl.H, hsl.S, hsl.L, hsl.A), nil

	default:
		switch ch {
		case color.Red:
			base.R = color.ClampU8(int(value))
		case color.Green:
			base.G = color.ClampU8(int(value))
		case color.Blue:
			base.B = color.ClampU8(int(value))
		case color.Alpha:
			base.A = color.ClampU8(int(value))
		default:
			return color.Color{}, fmt.Errorf("channel %s is not an rgb channel", ch)
		}
		return color.FromRGBA(base), nil
	}
}

func parseIndexList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		i, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid index %q: %w", p, err)
		}
		out = append(out, i)
	}
	return out, nil
}

package repl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/aconf/lang"
	"github.com/ardnew/aconf/log"
)

const (
	evalPrompt = "➜ "
	ctrlPrompt = " :"
)

const helpMessage = `
: Commands (press Esc to toggle mode):

  help     Print this message
  list     List constants and their values
  show     Print the translated document
  edit     Edit the document in external $EDITOR
  clear    Clear screen
  quit     Exit REPL

Usage:
  Type a constant reference (NAME, @NAME, or @[NAME]) to print its value
  Completions appear automatically as you type
  Press Tab / Shift-Tab to cycle through candidates
  Press Space to accept the current candidate
  Press Esc to toggle between eval and command modes
  Use Up/Down arrows for history navigation (mode switches automatically)
  Use Shift+Up/Shift+Down for history navigation within current mode only
  Use Alt+Up/Alt+Down to navigate command history only
  Press Ctrl+C on empty line or Ctrl+D to exit`

// inputMode represents the current input mode.
type inputMode int

const (
	modeEval inputMode = iota
	modeCtrl
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	ctrlPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// Messages delivered when an edit finishes.
type (
	editDoneMsg      struct{ s *session }
	editCancelledMsg struct{}
	editDeclinedMsg  struct{}
	editErrorMsg     struct{ err error }
)

// session is a translated document and the translator holding its
// constant table.
type session struct {
	tr     *lang.Translator
	doc    *lang.Map
	output string
}

// translate parses and translates the document read from r with a new
// translator.
func translate(
	ctx context.Context,
	r io.Reader,
	logger log.Logger,
	opts ...lang.Option,
) (*session, error) {
	opts = append([]lang.Option{lang.WithLogger(logger)}, opts...)

	doc, err := lang.ParseReader(ctx, r, opts...)
	if err != nil {
		return nil, err
	}

	tr := lang.New(opts...)

	output, err := tr.Translate(ctx, doc)
	if err != nil {
		return nil, err
	}

	return &session{tr: tr, doc: doc, output: output}, nil
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc      func() context.Context
	input        textinput.Model
	logger       log.Logger
	history      *History
	matches      fuzzy.Matches
	preTabText   string
	ctrlText     string
	evalText     string
	altOrigText  string
	historyIdx   int
	wordStart    int
	wordEnd      int
	suggIdx      int
	preTabCursor int
	altOrigMode  inputMode
	altOrigCur   int
	width        int
	evalCursor   int
	ctrlCursor   int
	mode         inputMode
	tabActive    bool
	altActive    bool
	quitting     bool

	*session
}

// Run translates the document read from reader and starts an interactive
// session over its constants. History is kept in cacheDir.
func Run(
	ctx context.Context,
	reader io.Reader,
	cacheDir string,
	logger log.Logger,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	logger.TraceContext(
		ctx,
		"repl start",
		slog.String("cache_dir", cacheDir),
		slog.Bool("has_source", reader != nil),
	)

	if reader == nil {
		return ErrNoSource
	}

	s, err := translate(ctx, reader, logger)
	if err != nil {
		return err
	}

	logger.TraceContext(
		ctx,
		"repl document loaded",
		slog.Int("entries", s.doc.Len()),
		slog.Int("constants", s.tr.Constants().Len()),
	)

	history := NewHistory(filepath.Join(cacheDir, baseHistory))
	if err := history.Load(); err != nil {
		logger.WarnContext(ctx, "could not load history", slog.Any("error", err))
	}

	p := tea.NewProgram(newModel(ctx, s, history, logger), tea.WithContext(ctx))
	_, err = p.Run()

	return err
}

const defaultWidth = 80

func newModel(
	ctx context.Context,
	s *session,
	history *History,
	logger log.Logger,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(evalPrompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		logger:     logger,
		history:    history,
		historyIdx: history.Len(),
		suggIdx:    -1,
		width:      defaultWidth,
		mode:       modeEval,
		session:    s,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(evalPrompt) - 2

		return m, nil

	case editDoneMsg:
		m.session = msg.s
		m.logger.TraceContext(
			m.ctxFunc(),
			"repl edit complete",
			slog.Int("constants", m.tr.Constants().Len()),
		)

		return m, tea.Println(resultStyle.Render("✔ document updated"))

	case editCancelledMsg:
		return m, tea.Println(hintStyle.Render("🗴 edit cancelled"))

	case editDeclinedMsg:
		m.quitting = true

		return m, tea.Quit

	case editErrorMsg:
		return m, tea.Println(errorStyle.Render("🗴 error: " + msg.err.Error()))
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.historyIdx < m.history.Len():
		hint := fmt.Sprintf("%s/%d",
			lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(m.historyIdx+1)),
			m.history.Len())
		b.WriteString(hintStyle.Render(hint))

	case strings.TrimSpace(m.input.Value()) == "":
		hint := "Type a constant name or press Esc for commands"
		if m.mode == modeCtrl {
			hint = "Type: " + strings.Join(ctrlCommands, ", ") +
				" (press Esc to return)"
		}

		b.WriteString(hintStyle.Render(hint))

	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(m.matches, m.suggIdx, m.tabActive, m.width))

	default:
		b.WriteString(m.valueHint())
	}

	b.WriteString("\n")

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(
		m.ctxFunc(),
		"repl keypress",
		slog.String("key", msg.String()),
	)

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.altActive = false
		m.historyIdx = m.history.Len()
		m.refreshMatches(false)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		m.altActive = false

		if !m.tabActive || len(m.matches) == 0 {
			return m.executeInput()
		}

		m.tabActive = false
		m.refreshMatches(true)

		return m, nil

	case tea.KeyTab:
		return m.cycle(1), nil

	case tea.KeyShiftTab:
		return m.cycle(-1), nil

	case tea.KeyUp:
		if msg.Alt {
			return m.historyCtrl(-1), nil
		}

		return m.historySeek(-1, false), nil

	case tea.KeyDown:
		if msg.Alt {
			return m.historyCtrl(1), nil
		}

		return m.historySeek(1, false), nil

	case tea.KeyShiftUp:
		return m.historySeek(-1, true), nil

	case tea.KeyShiftDown:
		return m.historySeek(1, true), nil

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabCursor)
			m.refreshMatches(false)

			return m, nil
		}

		m.altActive = false

		return m.switchToMode(1 - m.mode), nil

	case tea.KeyRunes:
		if m.tabActive && msg.String() == " " {
			m.tabActive = false
		}

		var cmd tea.Cmd

		m.historyIdx = m.history.Len()
		m.input, cmd = m.input.Update(msg)
		m.refreshMatches(true)

		return m, cmd
	}

	var cmd tea.Cmd

	m.tabActive = false
	m.altActive = false
	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	m.refreshMatches(false)

	return m, cmd
}

// cycle moves the tab selection by step, wrapping at either end. A single
// candidate is accepted immediately.
func (m model) cycle(step int) model {
	n := len(m.matches)
	if n == 0 {
		return m
	}

	if n == 1 {
		m.replaceWord(m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m
	}

	if m.tabActive {
		m.suggIdx = (m.suggIdx + step + n) % n
	} else {
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()
		m.suggIdx = 0

		if step < 0 {
			m.suggIdx = n - 1
		}
	}

	m.replaceWord(m.matches[m.suggIdx].Str)

	return m
}

// replaceWord replaces the word at the cursor and moves the cursor to its
// end.
func (m *model) replaceWord(replacement string) {
	input := m.input.Value()
	cursor := m.wordStart + len(replacement)

	m.input.SetValue(input[:m.wordStart] + replacement + input[m.wordEnd:])
	m.input.SetCursor(cursor)

	m.wordEnd = cursor
}

// refreshMatches recomputes the matches for the current input. With
// autoConfirm, a word that already equals its only candidate is accepted.
func (m *model) refreshMatches(autoConfirm bool) {
	m.matches, m.wordStart, m.wordEnd = m.computeMatches()

	if !m.tabActive {
		m.suggIdx = -1
	}

	if !autoConfirm || len(m.matches) != 1 {
		return
	}

	if word := m.input.Value()[m.wordStart:m.wordEnd]; word == m.matches[0].Str {
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil
	}
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	m.evalText, m.evalCursor = "", 0
	m.ctrlText, m.ctrlCursor = "", 0
	m.input.SetValue("")
	m.matches = nil

	if err := m.history.Add(input, m.mode); err != nil {
		m.logger.WarnContext(m.ctxFunc(), "could not save history", slog.Any("error", err))
	}

	m.historyIdx = m.history.Len()

	if m.mode == modeCtrl {
		return m.executeCommand(input)
	}

	echo := tea.Println(promptStyle.Render(evalPrompt) + inputStyle.Render(input))

	v, err := m.tr.Evaluate(input)
	if err != nil {
		m.logger.TraceContext(m.ctxFunc(), "repl eval failed", slog.Any("error", err))

		return m, tea.Sequence(echo, tea.Println(errorStyle.Render("error: "+err.Error())))
	}

	return m, tea.Sequence(echo, tea.Println(resultStyle.Render(lang.Render(v))))
}

func (m model) executeCommand(input string) (model, tea.Cmd) {
	parts := strings.Fields(input)
	echo := tea.Println(ctrlPromptStyle.Render(ctrlPrompt) + inputStyle.Render(input))

	m.logger.TraceContext(
		m.ctxFunc(),
		"repl command",
		slog.String("command", parts[0]),
	)

	switch parts[0] {
	case "q", "quit", "exit":
		m.quitting = true

		return m, tea.Sequence(echo, tea.Quit)

	case "h", "help":
		return m, tea.Sequence(echo, tea.Println(helpMessage))

	case "l", "list":
		return m, tea.Sequence(echo, tea.Println(m.listConstants()))

	case "s", "show":
		return m, tea.Sequence(echo, tea.Println(resultStyle.Render(m.output)))

	case "c", "clear":
		return m, tea.ClearScreen

	case "e", "edit":
		return m, tea.Sequence(echo, m.edit())

	default:
		return m, tea.Println(
			errorStyle.Render("Unknown command: " + parts[0] + " (try 'help')"),
		)
	}
}

func (m model) edit() tea.Cmd {
	cmd := &editCommand{
		doc:     m.doc,
		ctxFunc: m.ctxFunc,
		logger:  m.logger,
	}

	return tea.Exec(cmd, func(err error) tea.Msg {
		switch {
		case errors.Is(err, ErrEditDeclined):
			return editDeclinedMsg{}
		case err != nil:
			return editErrorMsg{err: err}
		case cmd.result == nil:
			return editCancelledMsg{}
		default:
			return editDoneMsg{s: cmd.result}
		}
	})
}

func (m model) listConstants() string {
	var b bytes.Buffer

	for name, v := range m.tr.Constants().All() {
		fmt.Fprintf(&b, "  %s %s\n", name, hintStyle.Render(preview(v)))
	}

	if b.Len() == 0 {
		return hintStyle.Render("  (no constants)")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// historySeek moves through history by step. With sameMode, entries from
// the other mode are skipped; otherwise the mode follows the entry. Moving
// past the newest entry clears the input.
func (m model) historySeek(step int, sameMode bool) model {
	for i := m.historyIdx + step; i >= 0 && i < m.history.Len(); i += step {
		entry, err := m.history.Entry(i)
		if err != nil {
			break
		}

		if sameMode && entry.Mode != m.mode {
			continue
		}

		if entry.Mode != m.mode {
			m = m.switchToMode(entry.Mode)
		}

		m.historyIdx = i
		m.setInput(entry.Line, len(entry.Line))

		return m
	}

	if step > 0 && m.historyIdx < m.history.Len() {
		m.historyIdx = m.history.Len()
		m.setInput("", 0)
	}

	return m
}

// historyCtrl browses command history only, restoring the original mode and
// input once either end is reached.
func (m model) historyCtrl(step int) model {
	if !m.altActive {
		m.altActive = true
		m.altOrigMode = m.mode
		m.altOrigText = m.input.Value()
		m.altOrigCur = m.input.Position()
		m = m.switchToMode(modeCtrl)
	}

	idx := m.historyIdx

	m = m.historySeek(step, true)
	if m.historyIdx != idx && m.historyIdx < m.history.Len() {
		return m
	}

	m.altActive = false
	m = m.switchToMode(m.altOrigMode)
	m.historyIdx = m.history.Len()
	m.setInput(m.altOrigText, m.altOrigCur)

	return m
}

func (m *model) setInput(text string, cursor int) {
	m.input.SetValue(text)
	m.input.SetCursor(cursor)
	m.refreshMatches(false)
}

// switchToMode switches input mode, saving and restoring each mode's
// pending input.
func (m model) switchToMode(mode inputMode) model {
	if m.mode == modeEval {
		m.evalText, m.evalCursor = m.input.Value(), m.input.Position()
	} else {
		m.ctrlText, m.ctrlCursor = m.input.Value(), m.input.Position()
	}

	m.mode = mode

	if mode == modeEval {
		m.input.Prompt = promptStyle.Render(evalPrompt)
		m.setInput(m.evalText, m.evalCursor)
	} else {
		m.input.Prompt = ctrlPromptStyle.Render(ctrlPrompt)
		m.setInput(m.ctrlText, m.ctrlCursor)
	}

	return m
}

package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/menu-control/internal/logging/events"
	"github.com/atomicstack/menu-control/internal/menu"
	"github.com/atomicstack/menu-control/internal/render"
	"github.com/atomicstack/menu-control/internal/theme"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

const infoDuration = 5 * time.Second

type msgHandler func(tea.Msg) tea.Cmd

// Config describes the options the UI honours.
type Config struct {
	Width        int
	Height       int
	Loop         bool
	ResetOnEnter bool
	ShowFooter   bool
	Verbose      bool
}

// Model drives a menu session from Bubble Tea key events and prints the
// renderer's output.
type Model struct {
	session  *menu.Session
	renderer *render.Text

	filter    textinput.Model
	filtering bool

	loop         bool
	resetOnEnter bool
	showFooter   bool
	verbose      bool

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI around an assembled session and renderer.
func NewModel(cfg Config, session *menu.Session, renderer *render.Text) *Model {
	filter := textinput.New()
	filter.Prompt = "/"
	if styles.FilterPrompt != nil {
		filter.PromptStyle = *styles.FilterPrompt
	}
	if styles.Filter != nil {
		filter.TextStyle = *styles.Filter
	}
	m := &Model{
		session:      session,
		renderer:     renderer,
		filter:       filter,
		loop:         cfg.Loop,
		resetOnEnter: cfg.ResetOnEnter,
		showFooter:   cfg.ShowFooter,
		verbose:      cfg.Verbose,
	}
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	events.UI.Resize(size.Width, size.Height)
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

// Notify surfaces a status line for selection callbacks. Quiet unless the
// verbose option is on.
func (m *Model) Notify(message string) {
	if !m.verbose {
		return
	}
	m.setInfo(message)
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoDuration)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}

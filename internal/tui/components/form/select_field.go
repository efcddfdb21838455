package form

import (
	"io"

	"charm.land/bubbles/v2/list"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/formgate/internal/core/field"
	"github.com/colonyops/formgate/internal/core/styles"
)

// SelectField is a single-select field wrapping list.Model. The highlighted
// option is the field's value.
type SelectField struct {
	list    list.Model
	options []string
	label   string
	focused bool
	v       *field.Validator
}

// selectDelegate renders items in a single-select list.
type selectDelegate struct{}

func (d selectDelegate) Height() int                             { return 1 }
func (d selectDelegate) Spacing() int                            { return 0 }
func (d selectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d selectDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(selectItem)
	if !ok {
		return
	}

	style := styles.TextMutedStyle
	cursor := "  "
	if index == m.Index() {
		style = styles.FormTitleStyle
		cursor = "> "
	}

	_, _ = io.WriteString(w, cursor)
	_, _ = io.WriteString(w, style.Render(item.label))
}

// NewSelectField creates a single-select field for v from static options.
// The option equal to the validator's value is highlighted; otherwise the
// first option is, and it becomes the stored value without a validation pass.
func NewSelectField(label string, options []string, v *field.Validator) *SelectField {
	items := make([]list.Item, len(options))
	selected := 0
	for i, opt := range options {
		items[i] = selectItem{label: opt, index: i}
		if opt == v.Value() {
			selected = i
		}
	}

	const maxVisible = 8
	height := max(min(len(options), maxVisible), 1)

	l := list.New(items, selectDelegate{}, 40, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowPagination(len(options) > maxVisible)
	l.Styles.TitleBar = lipgloss.NewStyle()

	l.FilterInput.Prompt = "/ "
	filterStyles := textinput.DefaultStyles(true)
	filterStyles.Cursor.Color = styles.ColorPrimary
	l.FilterInput.SetStyles(filterStyles)

	if len(options) > 0 {
		l.Select(selected)
	}

	f := &SelectField{
		list:    l,
		options: options,
		label:   label,
		v:       v,
	}
	v.SetValue(f.current())
	return f
}

func (f *SelectField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)
	// While a filter is being typed the highlighted item is provisional and
	// may not exist at all, so the bound value keeps its last choice.
	if f.list.SettingFilter() || f.list.SelectedItem() == nil {
		return f, cmd
	}
	sync(f.v, f.current())
	return f, cmd
}

func (f *SelectField) current() string {
	item := f.list.SelectedItem()
	if item == nil {
		return ""
	}
	if si, ok := item.(selectItem); ok && si.index >= 0 && si.index < len(f.options) {
		return f.options[si.index]
	}
	return ""
}

func (f *SelectField) View() string {
	body := f.list.View()
	if f.list.SettingFilter() {
		body = lipgloss.JoinVertical(lipgloss.Left, f.list.FilterInput.View(), body)
	}
	return render(f.label, body, f.focused, f.v)
}

func (f *SelectField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *SelectField) Blur() {
	f.focused = false
}

func (f *SelectField) Focused() bool               { return f.focused }
func (f *SelectField) Label() string               { return f.label }
func (f *SelectField) Validator() *field.Validator { return f.v }

// IsFiltering returns whether the list is currently filtering.
func (f *SelectField) IsFiltering() bool {
	return f.list.SettingFilter()
}

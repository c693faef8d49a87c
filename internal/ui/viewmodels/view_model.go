package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"qkart/internal/config"
	"qkart/internal/domain"
	"qkart/internal/ui/form"
	"qkart/internal/ui/input/types"
	"qkart/internal/ui/state"
	"qkart/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	config           *config.Config
	width            int
	height           int
	help             help.Model
	keys             help.KeyMap
	session          domain.Session
	form             *form.Form
	spinner          string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		config:           cfg,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model and the bindings it lists
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the search field model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// SetSession sets the session shown in the header
func (vm *ViewModel) SetSession(s domain.Session) {
	vm.session = s
}

// SetForm sets the form of the login or register page
func (vm *ViewModel) SetForm(f *form.Form) {
	vm.form = f
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	result := vm.state.Result
	vs := views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Page:          vm.state.Page.String(),
		LoggedIn:      vm.session.LoggedIn(),
		Username:      vm.session.Username,
		Balance:       vm.session.Balance,
		SearchView:    vm.inputTransformer.SearchView(),
		SearchFocused: vm.inputTransformer.SearchFocused(),
		Query:         result.Query,
		ShowHero:      vm.config.UISettings.ShowHero,
		Status:        result.Status,
		FailureReason: result.Reason,
		Products:      result.Products(),
		SelectedIndex: vm.state.SelectedIndex,
		ViewportRow:   vm.state.ViewportRow,
		Columns:       vm.state.Columns,
		VisibleRows:   vm.state.VisibleRows,
		Spinner:       vm.spinner,
		StatusMessage: vm.state.StatusMessage,
		StatusIsError: vm.state.StatusIsError,
		ConfirmLogout: vm.inputTransformer.ConfirmingLogout(),
		ShowHelp:      vm.state.ShowHelp,
	}
	if vm.keys != nil {
		vs.ShortHelp = vm.help.View(vm.keys)
	}
	if vm.form != nil && vm.state.Page != state.PageProducts {
		vs.Form = vm.buildForm()
	}
	return vs
}

func (vm *ViewModel) buildForm() views.FormView {
	fv := views.FormView{
		Title:       vm.form.Title,
		SubmitLabel: vm.form.SubmitLabel,
		Submitting:  vm.state.Submitting,
	}
	for i, f := range vm.form.Fields {
		fv.Fields = append(fv.Fields, views.FieldView{
			Label:   f.Label,
			Input:   f.Input.View(),
			Focused: i == vm.form.Focused(),
		})
	}
	fv.Footnote = "Tab to move • Enter to submit • Esc to go back"
	return fv
}

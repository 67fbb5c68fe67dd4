// Package tui implements the clipbridge terminal interface.
//
// The shell (Model) owns an *app.State and routes messages to one of two
// screens, chosen by the UI Mode:
//   - Connect: join code for a second device, then into the editor
//   - Editor: the Document in a text area plus Copy, Download, SMS, Clear
//     and Transfer
//
// Two overlays sit above either screen, each driven only by its own flag on
// the state: the Transfer-Code Panel and the usage guide. Keys and clicks go
// to the topmost layer; timers and cursor blinks always go to the editor.
//
// Screens render inside RenderApplicationContainer. Clicking the header
// (the first HeaderLines rows) returns to Connect.
//
//	state := app.NewState(st)
//	p := tea.NewProgram(tui.NewModel(state, joinURL, acts),
//	    tea.WithAltScreen(), tea.WithMouseCellMotion())
//	if _, err := p.Run(); err != nil {
//	    return err
//	}
package tui

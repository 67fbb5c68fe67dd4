// Package app holds clipbridge's application state.
//
// A State owns the single Document, the UI Mode (Connect or Editor) and the
// two overlay flags (transfer code, help). Views receive a *State and change
// it only through its named setters. Every Document change is written
// through to the Persistent Text Store immediately.
//
//	st := app.NewState(store.NewMemory(""))
//	st.Mode()            // ModeConnect, nothing stored yet
//	st.SetText("hello")  // persisted
//	st.SetMode(app.ModeEditor)
package app

// Package platform contains the OS integration the dock needs: native window
// state and styles, screen and taskbar geometry, keyboard state, the OLE drag
// loop, the single-instance guard, user prompts and filesystem helpers.
//
// Windows is the real target. Other platforms compile against stubs that
// report ErrUnsupported so the rest of the program stays portable.
package platform

package dragout

// Package dragout builds the outbound drag payload for retained files and
// decides how a running drag proceeds. It is pure Go: the platform package
// adapts these types to the native drag loop (OLE DoDragDrop on Windows).

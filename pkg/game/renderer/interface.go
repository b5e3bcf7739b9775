package renderer

// Renderer defines the interface for maze rendering backends
type Renderer interface {
	// Init prepares the backend (colours, translations, window)
	Init() error

	// Clear clears the display
	Clear()

	// RenderFrame draws one snapshot of the session
	RenderFrame(f Frame) error

	// Close releases the backend
	Close() error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() error {
	if Current != nil {
		return Current.Init()
	}
	return nil
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a frame with the current renderer
func RenderFrame(f Frame) error {
	if Current != nil {
		return Current.RenderFrame(f)
	}
	return nil
}

// Close closes the current renderer
func Close() error {
	if Current != nil {
		return Current.Close()
	}
	return nil
}

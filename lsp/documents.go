package lsp

import "sync"

// Documents holds the text of open documents keyed by URI. glsp calls the
// handlers from its own goroutines, so access is locked.
type Documents struct {
	mu   sync.RWMutex
	text map[string]string
}

func NewDocuments() *Documents {
	return &Documents{text: make(map[string]string)}
}

func (d *Documents) Update(uri, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.text[uri] = text
}

func (d *Documents) Get(uri string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	text, ok := d.text[uri]
	return text, ok
}

func (d *Documents) Close(uri string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.text, uri)
}

func (d *Documents) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.text)
}

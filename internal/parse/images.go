package parse

// pendingImage is an image that has arrived but has no step to own it yet.
type pendingImage struct {
	data []byte
	mime string
}

// addImage applies the pairing policy for a newly arrived image: attach it
// to the current step when that step has no image, otherwise queue it in
// FIFO order for the end-of-stream drain.
func (p *Parser) addImage(data []byte, mimeType string) {
	if cur := len(p.steps) - 1; cur >= 0 && !p.steps[cur].HasImage() {
		p.steps[cur].ImageData = data
		p.steps[cur].ImageMIME = mimeType
		return
	}
	p.pending = append(p.pending, pendingImage{data: data, mime: mimeType})
}

// attachPendingToFirst hands the oldest queued image to the first step.
// Called exactly when the first step is created, so images generated before
// any step text still land on step one.
func (p *Parser) attachPendingToFirst() {
	if len(p.pending) == 0 || p.steps[0].HasImage() {
		return
	}
	img := p.pending[0]
	p.pending = p.pending[1:]
	p.steps[0].ImageData = img.data
	p.steps[0].ImageMIME = img.mime
}

// drainImages assigns queued images, oldest first, to steps lacking one, in
// step order. Images left over once every step is satisfied are discarded
// and counted.
func (p *Parser) drainImages() {
	for i := range p.steps {
		if len(p.pending) == 0 {
			break
		}
		if p.steps[i].HasImage() {
			continue
		}
		img := p.pending[0]
		p.pending = p.pending[1:]
		p.steps[i].ImageData = img.data
		p.steps[i].ImageMIME = img.mime
	}
	p.discarded += len(p.pending)
	p.pending = nil
}

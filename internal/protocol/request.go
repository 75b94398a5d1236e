package protocol

// Request is one inbound protocol call: the action discriminator plus flat
// string maps of the query parameters and form fields. The distinction
// between query and form matters on the wire — the client sends the
// password, route, log and comments as form fields and everything else in
// the query string.
type Request struct {
	Action string
	query  map[string]string
	form   map[string]string
}

// NewRequest builds a Request from the two parameter maps. The action is
// taken from the query string like every other discriminator field.
func NewRequest(query, form map[string]string) Request {
	if query == nil {
		query = map[string]string{}
	}
	if form == nil {
		form = map[string]string{}
	}
	return Request{Action: query["action"], query: query, form: form}
}

// Query returns the named query parameter, or "" when absent.
func (r Request) Query(key string) string {
	return r.query[key]
}

// QueryOK returns the named query parameter and whether the key was present
// at all. Absent and empty are different things for fields like phase.
func (r Request) QueryOK(key string) (string, bool) {
	v, ok := r.query[key]
	return v, ok
}

// Form returns the named form field, or "" when absent.
func (r Request) Form(key string) string {
	return r.form[key]
}

// FormOK returns the named form field and whether the key was present.
func (r Request) FormOK(key string) (string, bool) {
	v, ok := r.form[key]
	return v, ok
}

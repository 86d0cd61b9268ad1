package cookiecart

import "context"

// Jar is the per-request cookie access the store needs. The HTTP layer
// installs an implementation into the request context; tests use an in-memory
// map. Get returns ("", false) when the cookie is absent.
type Jar interface {
	Get(name string) (string, bool)
	Set(name, value string, maxAgeSeconds int)
}

type jarContextKey struct{}

// WithJar attaches the request's cookie jar to the context.
func WithJar(ctx context.Context, jar Jar) context.Context {
	return context.WithValue(ctx, jarContextKey{}, jar)
}

// JarFrom extracts the cookie jar installed by the HTTP layer.
func JarFrom(ctx context.Context) (Jar, bool) {
	jar, ok := ctx.Value(jarContextKey{}).(Jar)

	return jar, ok
}

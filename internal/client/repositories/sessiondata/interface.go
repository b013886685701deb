// Package sessiondata persists the client's session state (bearer token and
// cached identity) in the local sqlite database so a session survives
// restarts.
package sessiondata

import "context"

// Well-known keys. Token and user are always written and removed together;
// the session layer treats a lone survivor as corrupt state.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Repository is a string-keyed blob store over the session_state table.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

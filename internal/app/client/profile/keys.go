// Package profile is the local profile of the CLI: the account registry, the
// session pointer and the blobs written by the upload, analysis and
// generation screens, all kept in one kv namespace.
package profile

const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUserId"
	KeyPosts       = "userPosts"
	KeyStyle       = "styleProfile"
	KeyGenerated   = "generatedPostData"
	KeyAccessToken = "access"
)

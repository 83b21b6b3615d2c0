package account

import "linkedink/internal/domain/apperr"

// Account is a registered user. Password is clear text in the local profile
// and a bcrypt hash on the backend, depending on the PasswordHasher in use.
type Account struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	PostsCount int    `json:"postsCount"`
	HasProfile bool   `json:"hasProfile"`
}

// View is an Account without its password.
type View struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	PostsCount int    `json:"postsCount"`
	HasProfile bool   `json:"hasProfile"`
}

func (a Account) View() View {
	return View{
		ID:         a.ID,
		Name:       a.Name,
		Email:      a.Email,
		PostsCount: a.PostsCount,
		HasProfile: a.HasProfile,
	}
}

// Patch is a merge-patch over the mutable account attributes. Nil fields are
// left untouched. Email and password cannot be patched.
type Patch struct {
	Name       *string `json:"name,omitempty"`
	PostsCount *int    `json:"postsCount,omitempty"`
	HasProfile *bool   `json:"hasProfile,omitempty"`
}

func SetPostsCount(n int) Patch {
	return Patch{PostsCount: &n}
}

func MarkProfileReady() Patch {
	ready := true
	return Patch{HasProfile: &ready}
}

func Rename(name string) Patch {
	return Patch{Name: &name}
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.PostsCount == nil && p.HasProfile == nil
}

// Apply merges p into a. hasProfile never goes back to false once set.
func (p Patch) Apply(a *Account) error {
	if p.PostsCount != nil && *p.PostsCount < 0 {
		return apperr.Validation("invalid_posts_count", "Posts count cannot be negative")
	}

	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.PostsCount != nil {
		a.PostsCount = *p.PostsCount
	}
	if p.HasProfile != nil && *p.HasProfile {
		a.HasProfile = true
	}

	return nil
}

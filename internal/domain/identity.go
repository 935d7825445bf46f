package domain

import "fmt"

// ActorKind 区分两类可以登录的主体。
type ActorKind string

const (
	ActorUser    ActorKind = "user"
	ActorCompany ActorKind = "company"
)

// Identity 是经过验证的 token 解码后的调用方身份。
// Key 对 User 为 username，对 Company 为 handle。
type Identity struct {
	Kind ActorKind
	Key  string
}

// UserIdentity 构造一个用户身份。
func UserIdentity(username string) Identity {
	return Identity{Kind: ActorUser, Key: username}
}

// CompanyIdentity 构造一个公司身份。
func CompanyIdentity(handle string) Identity {
	return Identity{Kind: ActorCompany, Key: handle}
}

func (i Identity) IsUser() bool    { return i.Kind == ActorUser && i.Key != "" }
func (i Identity) IsCompany() bool { return i.Kind == ActorCompany && i.Key != "" }

// IsZero 表示没有任何身份 (未认证)。
func (i Identity) IsZero() bool { return i.Key == "" }

func (i Identity) String() string {
	if i.IsZero() {
		return "anonymous"
	}
	return fmt.Sprintf("%s:%s", i.Kind, i.Key)
}

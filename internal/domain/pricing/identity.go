package pricing

import (
	"strconv"
	"strings"
)

// IdentityCode is the price-lookup key for one player.
type IdentityCode string

const (
	IdentityWalkin  IdentityCode = "walkin"
	IdentityGuest   IdentityCode = "guest"
	IdentityMember1 IdentityCode = "member_1"
	IdentityMember2 IdentityCode = "member_2"
	IdentityMember3 IdentityCode = "member_3"
	IdentityMember4 IdentityCode = "member_4"

	memberPrefix = "member_"
)

// MemberIdentity returns member_{level}. Levels below 1 fall back to walkin.
func MemberIdentity(level int) IdentityCode {
	if level < 1 {
		return IdentityWalkin
	}
	return IdentityCode(memberPrefix + strconv.Itoa(level))
}

func (c IdentityCode) IsMember() bool {
	return strings.HasPrefix(string(c), memberPrefix)
}

func (c IdentityCode) Normalize() IdentityCode {
	v := strings.ToLower(strings.TrimSpace(string(c)))
	if v == "" {
		return IdentityWalkin
	}
	return IdentityCode(v)
}

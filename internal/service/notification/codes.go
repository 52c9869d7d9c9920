package notification

import (
	"crypto/rand"
	"strings"

	"github.com/orincore/glitzfusion/internal/domain"
)

const (
	memberCodeLength   = 6
	memberCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// resolveMemberCodes applies the shared fallback rule: the primary
// member (index 0) reuses the booking code; every other member without
// an assigned code gets a fresh random code. The generated codes are
// cosmetic per-email fallbacks, not authoritative ticket codes.
func resolveMemberCodes(b domain.BookingData) []string {
	codes := make([]string, len(b.Members))

	for i, m := range b.Members {
		switch {
		case m.MemberCode != "":
			codes[i] = m.MemberCode
		case i == 0:
			codes[i] = b.BookingCode
		default:
			codes[i] = randomMemberCode()
		}
	}

	return codes
}

func randomMemberCode() string {
	buf := make([]byte, memberCodeLength)
	_, _ = rand.Read(buf)

	var sb strings.Builder
	for _, b := range buf {
		sb.WriteByte(memberCodeAlphabet[int(b)%len(memberCodeAlphabet)])
	}

	return sb.String()
}

// recipientIndex finds the recipient among the booking members,
// falling back to the primary member.
func recipientIndex(b domain.BookingData, email string) int {
	for i, m := range b.Members {
		if strings.EqualFold(m.Email, email) {
			return i
		}
	}
	return 0
}

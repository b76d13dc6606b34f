package service

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"greenfund-demo/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/sha3"
)

// pendingImpact is the impact text of a freshly submitted application.
const pendingImpact = "CO2 impact pending assessment"

// LoanRegistry is the ordered loan list of one session.
// It is not safe for concurrent use; the owning engine serialises access.
type LoanRegistry struct {
	namespace uuid.UUID
	loans     []domain.LoanRecord
	seq       uint64
}

// NewLoanRegistry creates a registry holding a copy of seed.
// namespace scopes generated loan ids to one session.
func NewLoanRegistry(namespace uuid.UUID, seed []domain.LoanRecord) *LoanRegistry {
	loans := make([]domain.LoanRecord, len(seed))
	copy(loans, seed)
	return &LoanRegistry{namespace: namespace, loans: loans}
}

// List returns the records in insertion order. The slice is a copy.
func (r *LoanRegistry) List() []domain.LoanRecord {
	out := make([]domain.LoanRecord, len(r.loans))
	copy(out, r.loans)
	return out
}

// Len returns the number of records.
func (r *LoanRegistry) Len() int {
	return len(r.loans)
}

// Append validates rec and adds it at the end of the registry.
// Ids are unique within a registry.
func (r *LoanRegistry) Append(rec domain.LoanRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if r.contains(rec.ID) {
		return fmt.Errorf("loan %s: %w", rec.ID, domain.ErrDuplicateLoanID)
	}
	r.loans = append(r.loans, rec)
	return nil
}

// NewPendingRecord builds the record a successful application produces:
// Pending, 0% repaid, attributed to the applicant's wallet.
func (r *LoanRegistry) NewPendingRecord(borrowerAddress, amount, currency, purpose string) domain.LoanRecord {
	amount = strings.TrimSpace(amount)
	// Short ids can collide; move on to the next sequence number until free.
	var id string
	for {
		r.seq++
		id = LoanID(r.namespace, r.seq, borrowerAddress, amount, purpose)
		if !r.contains(id) {
			break
		}
	}
	display := amount + " " + currency
	if d, err := decimal.NewFromString(amount); err == nil {
		display = domain.FormatAmount(d, currency)
	}
	return domain.LoanRecord{
		ID:                       id,
		Borrower:                 domain.TruncateAddress(borrowerAddress),
		Amount:                   display,
		Purpose:                  strings.TrimSpace(purpose),
		Status:                   domain.LoanStatusPending,
		RepaymentProgressPercent: 0,
		EnvironmentalImpact:      pendingImpact,
	}
}

func (r *LoanRegistry) contains(id string) bool {
	for _, l := range r.loans {
		if l.ID == id {
			return true
		}
	}
	return false
}

// LoanID derives a short Ethereum-style id ("0x" + 6 hex digits) from the
// Keccak-256 hash of the application fields.
func LoanID(namespace uuid.UUID, seq uint64, borrower, amount, purpose string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write(namespace[:])
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], seq)
	h.Write(b[:])
	h.Write([]byte(borrower))
	h.Write([]byte{0})
	h.Write([]byte(amount))
	h.Write([]byte{0})
	h.Write([]byte(purpose))
	sum := h.Sum(nil)
	return "0x" + hex.EncodeToString(sum[:3])
}

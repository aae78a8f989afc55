package ledger_test

import (
	"encoding/json"
	"rewarder/internal/ledger"

	"github.com/gagliardetto/solana-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Keys", func() {
	var key solana.PrivateKey

	BeforeEach(func() {
		var err error
		key, err = solana.NewRandomPrivateKey()
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("ParseFeePayer", func() {
		It("should read the solana-keygen json format", func() {
			ints := make([]int, len(key))
			for i, b := range key {
				ints[i] = int(b)
			}
			raw, err := json.Marshal(ints)
			Expect(err).NotTo(HaveOccurred())

			parsed, err := ledger.ParseFeePayer(string(raw))
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed.PublicKey()).To(Equal(key.PublicKey()))
		})

		It("should read a base58 private key", func() {
			parsed, err := ledger.ParseFeePayer("  " + key.String() + "\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(key))
		})

		It("should reject empty material", func() {
			_, err := ledger.ParseFeePayer("   ")
			Expect(err).To(MatchError(ledger.ErrEmptyKey))
		})

		It("should reject a keypair whose halves do not match", func() {
			other, err := solana.NewRandomPrivateKey()
			Expect(err).NotTo(HaveOccurred())
			mixed := append(solana.PrivateKey{}, key[:32]...)
			mixed = append(mixed, other[32:]...)

			_, err = ledger.ParseFeePayer(mixed.String())
			Expect(err).To(MatchError(ledger.ErrInvalidKey))
		})

		It("should reject a short key", func() {
			_, err := ledger.ParseFeePayer("[1,2,3]")
			Expect(err).To(MatchError(ledger.ErrInvalidKey))
		})

		It("should reject out of range bytes", func() {
			_, err := ledger.ParseFeePayer("[256]")
			Expect(err).To(MatchError(ledger.ErrInvalidKey))
		})

		It("should reject malformed json", func() {
			_, err := ledger.ParseFeePayer("[1,2")
			Expect(err).To(MatchError(ledger.ErrInvalidKey))
		})
	})

	Describe("ParseMint", func() {
		It("should parse a base58 public key", func() {
			mint, err := ledger.ParseMint(key.PublicKey().String())
			Expect(err).NotTo(HaveOccurred())
			Expect(mint).To(Equal(key.PublicKey()))
		})

		It("should reject empty and invalid input", func() {
			_, err := ledger.ParseMint("")
			Expect(err).To(MatchError(ledger.ErrEmptyKey))

			_, err = ledger.ParseMint("not-a-key")
			Expect(err).To(MatchError(ledger.ErrInvalidKey))
		})
	})
})

var _ = Describe("Accounts", func() {
	Describe("ParseTokenProgram", func() {
		DescribeTable("named programs",
			func(name string, expected solana.PublicKey) {
				program, err := ledger.ParseTokenProgram(name)
				Expect(err).NotTo(HaveOccurred())
				Expect(program).To(Equal(expected))
			},
			Entry("default", "", ledger.Token2022ProgramID),
			Entry("token-2022", "token-2022", ledger.Token2022ProgramID),
			Entry("classic token", "token", solana.TokenProgramID),
			Entry("base58 id", solana.TokenProgramID.String(), solana.TokenProgramID),
		)

		It("should reject unknown names", func() {
			_, err := ledger.ParseTokenProgram("tokens-3000")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("FindAssociatedTokenAddress", func() {
		It("should match the standard derivation for the classic token program", func() {
			owner := solana.NewWallet().PublicKey()
			mint := solana.NewWallet().PublicKey()

			expected, _, err := solana.FindAssociatedTokenAddress(owner, mint)
			Expect(err).NotTo(HaveOccurred())

			addr, err := ledger.FindAssociatedTokenAddress(owner, mint, solana.TokenProgramID)
			Expect(err).NotTo(HaveOccurred())
			Expect(addr).To(Equal(expected))
		})

		It("should derive a different account per token program", func() {
			owner := solana.NewWallet().PublicKey()
			mint := solana.NewWallet().PublicKey()

			classic, err := ledger.FindAssociatedTokenAddress(owner, mint, solana.TokenProgramID)
			Expect(err).NotTo(HaveOccurred())
			token2022, err := ledger.FindAssociatedTokenAddress(owner, mint, ledger.Token2022ProgramID)
			Expect(err).NotTo(HaveOccurred())
			Expect(token2022).NotTo(Equal(classic))
		})
	})

	Describe("WebsocketURL", func() {
		DescribeTable("scheme mapping",
			func(in, out string) {
				Expect(ledger.WebsocketURL(in)).To(Equal(out))
			},
			Entry("https", "https://api.devnet.solana.com", "wss://api.devnet.solana.com"),
			Entry("http", "http://127.0.0.1:8899", "ws://127.0.0.1:8899"),
			Entry("already ws", "wss://rpc.example", "wss://rpc.example"),
		)
	})
})

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bignum/bigint"
	"bignum/internal/unsaferand"
	"bignum/rsa"
)

var rsaCmd = &cobra.Command{
	Use:   "rsa",
	Short: "Batch RSA operations",
	Long: `Batch RSA key generation, encryption, and decryption.

The padding used here is random filler, not a secure padding scheme;
do not use this program to protect real data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return errors.New("missing argument: use generate, encrypt, or decrypt")
	},
}

func init() {
	rsaCmd.AddCommand(generateCmd, encryptCmd, decryptCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate [bits]",
	Short: "Generate a key pair; public key on stdout, private on stderr",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bits := viper.GetInt("generate_bits")
		if len(args) == 1 && args[0] != "" {
			parsed, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.WithMessagef(bigint.ErrParse, "can't parse bit length %q", args[0])
			}
			if parsed < 0 {
				return errors.WithMessage(bigint.ErrRange, "bit count out of range")
			}
			bits = parsed
		}
		kp, err := rsa.GenerateKeyPair(bits, unsaferand.Source(true), rsa.WithLogger(log))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), kp.EncryptionKey())
		fmt.Fprintln(cmd.ErrOrStderr(), kp.DecryptionKey())
		return nil
	},
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt <exponent> <modulus>",
	Short: "Encrypt stdin to hex ciphertext integers on stdout",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := rsa.ParseEncryptionKey(keyReader(args))
		if err != nil {
			return err
		}
		w, err := key.NewWriter(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if _, err := io.Copy(w, cmd.InOrStdin()); err != nil {
			return err
		}
		return w.Close()
	},
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt <exponent> <modulus>",
	Short: "Decrypt ciphertext integers from stdin to stdout",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := rsa.ParseDecryptionKey(keyReader(args))
		if err != nil {
			return err
		}
		r, err := key.NewReader(cmd.InOrStdin())
		if err != nil {
			return err
		}
		_, err = io.Copy(cmd.OutOrStdout(), r)
		return err
	},
}

// keyReader joins the exponent and modulus arguments into the key wire
// format accepted by the parsers.
func keyReader(args []string) io.Reader {
	return strings.NewReader(strings.Join(args, " "))
}

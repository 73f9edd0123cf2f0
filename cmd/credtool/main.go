// Command credtool is the companion utility for the encrypted credential
// envelope: it generates AES keys and produces the email/password envelopes
// the auth endpoints consume. Useful for onboarding clients and for testing
// against a running server.
//
// Usage:
//
//	credtool -genkey [-bytes 32]
//	credtool -encrypt [-key <base64url>]
//
// In -encrypt mode the key is taken from the -key flag or the
// ENCRYPTION_KEY environment variable, the email is read from stdin, and
// the password is read from the terminal without echo.
package main

import (
	"bufio"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Werffios/AntilleanController/internal/common"
	"github.com/Werffios/AntilleanController/internal/cryptox"
)

func main() {
	genkey := flag.Bool("genkey", false, "generate a new encryption key")
	keyBytes := flag.Int("bytes", 32, "key size in bytes (16, 24 or 32)")
	encrypt := flag.Bool("encrypt", false, "encrypt credentials into envelopes")
	key := flag.String("key", "", "encryption key (base64url); defaults to ENCRYPTION_KEY")
	flag.Parse()

	switch {
	case *genkey:
		if err := runGenKey(*keyBytes); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case *encrypt:
		if err := runEncrypt(*key); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runGenKey(size int) error {
	switch size {
	case 16, 24, 32:
	default:
		return fmt.Errorf("key size must be 16, 24 or 32 bytes, got %d", size)
	}
	key := common.GenerateRandByteArray(size)
	fmt.Println(base64.URLEncoding.EncodeToString(key))
	return nil
}

func runEncrypt(keyB64 string) error {
	if keyB64 == "" {
		keyB64 = os.Getenv("ENCRYPTION_KEY")
	}

	// Enforce mode: a broken key should fail loudly here, not produce
	// envelopes the server cannot open.
	codec, err := cryptox.NewCodec(keyB64, cryptox.ModeEnforce)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Enter email\n> ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	email = strings.TrimSpace(email)

	fmt.Print("Enter password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	emailEnv, err := codec.Encrypt(email)
	if err != nil {
		return err
	}
	passwordEnv, err := codec.Encrypt(string(password))
	if err != nil {
		return err
	}

	fmt.Printf("email_encrypted:    %s\n", emailEnv)
	fmt.Printf("password_encrypted: %s\n", passwordEnv)
	return nil
}

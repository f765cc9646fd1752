package wallet

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AlexZinkM/elrond-wallet/elrond"
	"github.com/AlexZinkM/elrond-wallet/internal/crypto"
	"github.com/AlexZinkM/elrond-wallet/internal/logger"
	"github.com/AlexZinkM/elrond-wallet/internal/model"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// FileExistsError is an error when file already exists and is not empty
type FileExistsError struct {
	Path string
}

func (e *FileExistsError) Error() string {
	return fmt.Sprintf("file %s is not empty", e.Path)
}

// IsFileExistsError checks if error is FileExistsError
func IsFileExistsError(err error) bool {
	var target *FileExistsError
	return errors.As(err, &target)
}

// GenerateWallet creates a new account and saves it to the key file.
// Returns the generated address on success.
// password must be []byte for security (caller should zero it after use)
func (s *Service) GenerateWallet(password []byte) (address string, err error) {
	if ext := filepath.Ext(s.filePath); ext != crypto.KeyFileExt {
		return "", fmt.Errorf("file must have %s extension", crypto.KeyFileExt)
	}

	if fileInfo, err := os.Stat(s.filePath); err == nil && fileInfo.Size() > 0 {
		return "", &FileExistsError{Path: s.filePath}
	}

	account := elrond.GenerateAccount()
	defer account.Wipe()

	address = account.Address().String()

	qrCode, err := generateQRCode(address)
	if err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}

	walletData := &model.WalletData{
		Seed:      account.Secret(),
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}
	defer clear(walletData.Seed)

	if err := crypto.EncryptWallet(s.filePath, s.network.ChainID(), address, qrCode, walletData, password); err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", &FileExistsError{Path: s.filePath}
		}
		return "", fmt.Errorf("failed to encrypt wallet: %w", err)
	}

	logger.Info("wallet generated",
		zap.String("address", address),
		zap.String("network", s.network.String()),
		zap.String("file", s.filePath),
	)
	return address, nil
}

// generateQRCode generates QR code of address in base64
func generateQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}

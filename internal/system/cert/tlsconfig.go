/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package cert loads the TLS material of the server.
package cert

import (
	"crypto/tls"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/agribot/agribot/internal/system/config"
)

// ErrCertificateNotFound is returned when the configured certificate or key file is missing.
var ErrCertificateNotFound = errors.New("certificate file not found")

// GetTLSConfig loads the server certificate and key configured under security, relative to the
// server home.
func GetTLSConfig(cfg *config.Config, agriBotHome string) (*tls.Config, error) {
	certFilePath := path.Join(agriBotHome, cfg.Security.CertFile)
	keyFilePath := path.Join(agriBotHome, cfg.Security.KeyFile)

	for _, filePath := range []string{certFilePath, keyFilePath} {
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCertificateNotFound, filePath)
		}
	}

	certificate, err := tls.LoadX509KeyPair(certFilePath, keyFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load key pair: %w", err)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{certificate},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

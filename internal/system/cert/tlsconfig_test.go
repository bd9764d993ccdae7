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

package cert

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/agribot/agribot/internal/system/config"
)

type TLSConfigTestSuite struct {
	suite.Suite
	home string
	cfg  *config.Config
}

func TestTLSConfigSuite(t *testing.T) {
	suite.Run(t, new(TLSConfigTestSuite))
}

func (suite *TLSConfigTestSuite) SetupTest() {
	suite.home = suite.T().TempDir()
	suite.cfg = &config.Config{
		Security: config.SecurityConfig{CertFile: "server.cert", KeyFile: "server.key"},
	}
}

func (suite *TLSConfigTestSuite) writeKeyPair() {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	suite.Require().NoError(err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "localhost"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	suite.Require().NoError(err)
	keyDER, err := x509.MarshalECPrivateKey(key)
	suite.Require().NoError(err)

	suite.Require().NoError(os.WriteFile(filepath.Join(suite.home, "server.cert"),
		pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))
	suite.Require().NoError(os.WriteFile(filepath.Join(suite.home, "server.key"),
		pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER}), 0o600))
}

func (suite *TLSConfigTestSuite) TestLoadsKeyPair() {
	suite.writeKeyPair()

	tlsConfig, err := GetTLSConfig(suite.cfg, suite.home)

	suite.Require().NoError(err)
	suite.Len(tlsConfig.Certificates, 1)
}

func (suite *TLSConfigTestSuite) TestMissingCertificate() {
	_, err := GetTLSConfig(suite.cfg, suite.home)

	suite.ErrorIs(err, ErrCertificateNotFound)
}

func (suite *TLSConfigTestSuite) TestInvalidKeyPair() {
	suite.Require().NoError(os.WriteFile(filepath.Join(suite.home, "server.cert"), []byte("nope"), 0o600))
	suite.Require().NoError(os.WriteFile(filepath.Join(suite.home, "server.key"), []byte("nope"), 0o600))

	_, err := GetTLSConfig(suite.cfg, suite.home)

	suite.ErrorContains(err, "failed to load key pair")
}

package usecase

import (
	"crypto/rand"
	"math/big"
)

const (
	memberIDLength  = 9
	memberIDCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewMemberID gera o identificador curto impresso no cartão de membro:
// 9 caracteres base36 maiúsculos. A unicidade não é garantida aqui; o
// banco tem constraint UNIQUE em member_id e o registro tenta uma vez
// mais em caso de colisão.
func NewMemberID() string {
	max := big.NewInt(int64(len(memberIDCharset)))

	id := make([]byte, memberIDLength)
	for i := range id {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// rand.Reader não falha em plataformas suportadas
			panic(err)
		}
		id[i] = memberIDCharset[n.Int64()]
	}

	return string(id)
}

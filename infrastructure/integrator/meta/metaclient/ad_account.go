package metaclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ad-extractor-api/pkg/utils"
)

// GetAdAccountName busca o nome da conta de anúncios, usado para validar o
// token e preencher o nome da conexão no cadastro.
func (c *MetaClient) GetAdAccountName(ctx context.Context, accountID, accessToken string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/act_%s?fields=name&access_token=%s", c.Cfg.Meta.URL, accountID, accessToken)

	data, err := utils.MakeRequest(url)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to fetch ad account")
		return "", err
	}

	var response struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &response); err != nil {
		return "", err
	}

	if response.Name == "" {
		return "", fmt.Errorf("conta de anúncios %s não retornou nome", accountID)
	}

	return response.Name, nil
}

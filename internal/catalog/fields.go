package catalog

import (
	"github.com/vfg2006/ad-extractor-api/internal/domain"
)

var allLevels = []domain.ReportLevel{domain.LevelCampaign, domain.LevelAdset, domain.LevelAd}

// fieldTable é a tabela estática de campos extraíveis. Construída uma única
// vez na inicialização do processo e nunca alterada em tempo de execução.
// Campos de conversão usam a convenção "coleção:action_type" no APIField,
// resolvida para um FieldAccessor na construção do catálogo.
var fieldTable = []FieldDefinition{
	// Dimensões
	{ID: "campaign_id", DisplayName: "ID da Campanha", Description: "Identificador único da campanha", APIField: "campaign_id", Category: CategoryDimension, DataType: DataTypeString, AvailableLevels: allLevels, DisplayOrder: 10},
	{ID: "campaign_name", DisplayName: "Campanha", Description: "Nome da campanha", APIField: "campaign_name", Category: CategoryDimension, DataType: DataTypeString, AvailableLevels: allLevels, IsPopular: true, DisplayOrder: 11},
	{ID: "adset_id", DisplayName: "ID do Conjunto", Description: "Identificador único do conjunto de anúncios", APIField: "adset_id", Category: CategoryDimension, DataType: DataTypeString, AvailableLevels: []domain.ReportLevel{domain.LevelAdset, domain.LevelAd}, DisplayOrder: 12},
	{ID: "adset_name", DisplayName: "Conjunto de Anúncios", Description: "Nome do conjunto de anúncios", APIField: "adset_name", Category: CategoryDimension, DataType: DataTypeString, AvailableLevels: []domain.ReportLevel{domain.LevelAdset, domain.LevelAd}, IsPopular: true, DisplayOrder: 13},
	{ID: "ad_id", DisplayName: "ID do Anúncio", Description: "Identificador único do anúncio", APIField: "ad_id", Category: CategoryDimension, DataType: DataTypeString, AvailableLevels: []domain.ReportLevel{domain.LevelAd}, DisplayOrder: 14},
	{ID: "ad_name", DisplayName: "Anúncio", Description: "Nome do anúncio", APIField: "ad_name", Category: CategoryDimension, DataType: DataTypeString, AvailableLevels: []domain.ReportLevel{domain.LevelAd}, IsPopular: true, DisplayOrder: 15},
	{ID: "objective", DisplayName: "Objetivo", Description: "Objetivo de otimização da campanha", APIField: "objective", Category: CategoryDimension, DataType: DataTypeString, AvailableLevels: allLevels, DisplayOrder: 16},

	// Entrega
	{ID: "impressions", DisplayName: "Impressões", Description: "Número de vezes que os anúncios foram exibidos", APIField: "impressions", Category: CategoryDelivery, DataType: DataTypeInteger, AvailableLevels: allLevels, IsPopular: true, DisplayOrder: 20},
	{ID: "reach", DisplayName: "Alcance", Description: "Número de pessoas únicas que viram os anúncios", APIField: "reach", Category: CategoryDelivery, DataType: DataTypeInteger, AvailableLevels: allLevels, IsPopular: true, DisplayOrder: 21},
	{ID: "frequency", DisplayName: "Frequência", Description: "Média de vezes que cada pessoa viu o anúncio", APIField: "frequency", Category: CategoryDelivery, DataType: DataTypeNumber, AvailableLevels: allLevels, DisplayOrder: 22},

	// Performance
	{ID: "clicks", DisplayName: "Cliques", Description: "Cliques totais no anúncio", APIField: "clicks", Category: CategoryPerformance, DataType: DataTypeInteger, AvailableLevels: allLevels, IsPopular: true, DisplayOrder: 30},
	{ID: "unique_clicks", DisplayName: "Cliques Únicos", Description: "Pessoas únicas que clicaram", APIField: "unique_clicks", Category: CategoryPerformance, DataType: DataTypeInteger, AvailableLevels: allLevels, DisplayOrder: 31},
	{ID: "ctr", DisplayName: "CTR", Description: "Taxa de cliques sobre impressões", APIField: "ctr", Category: CategoryPerformance, DataType: DataTypePercentage, AvailableLevels: allLevels, IsPopular: true, DisplayOrder: 32},
	{ID: "inline_link_clicks", DisplayName: "Cliques no Link", Description: "Cliques em links dentro do anúncio", APIField: "inline_link_clicks", Category: CategoryPerformance, DataType: DataTypeInteger, AvailableLevels: allLevels, DisplayOrder: 33},

	// Custo
	{ID: "spend", DisplayName: "Investimento", Description: "Valor total investido no período", APIField: "spend", Category: CategoryCost, DataType: DataTypeCurrency, AvailableLevels: allLevels, IsPopular: true, DisplayOrder: 40},
	{ID: "cpc", DisplayName: "CPC", Description: "Custo médio por clique", APIField: "cpc", Category: CategoryCost, DataType: DataTypeCurrency, AvailableLevels: allLevels, DisplayOrder: 41},
	{ID: "cpm", DisplayName: "CPM", Description: "Custo por mil impressões", APIField: "cpm", Category: CategoryCost, DataType: DataTypeCurrency, AvailableLevels: allLevels, IsPopular: true, DisplayOrder: 42},
	{ID: "cpp", DisplayName: "CPP", Description: "Custo por mil pessoas alcançadas", APIField: "cpp", Category: CategoryCost, DataType: DataTypeCurrency, AvailableLevels: allLevels, DisplayOrder: 43},
	{ID: "cost_per_inline_link_click", DisplayName: "Custo por Clique no Link", Description: "Custo médio por clique em link", APIField: "cost_per_inline_link_click", Category: CategoryCost, DataType: DataTypeCurrency, AvailableLevels: allLevels, DisplayOrder: 44},

	// Conversões (valores aninhados em actions / action_values)
	{ID: "purchases", DisplayName: "Compras", Description: "Compras atribuídas aos anúncios", APIField: "actions:offsite_conversion.fb_pixel_purchase", Category: CategoryConversion, DataType: DataTypeInteger, AvailableLevels: allLevels, IsPopular: true, DisplayOrder: 50},
	{ID: "purchases_value", DisplayName: "Valor de Compras", Description: "Receita das compras atribuídas", APIField: "action_values:offsite_conversion.fb_pixel_purchase", Category: CategoryConversion, DataType: DataTypeCurrency, AvailableLevels: allLevels, IsPopular: true, DisplayOrder: 51},
	{ID: "leads", DisplayName: "Leads", Description: "Cadastros de leads atribuídos", APIField: "actions:lead", Category: CategoryConversion, DataType: DataTypeInteger, AvailableLevels: allLevels, IsPopular: true, DisplayOrder: 52},
	{ID: "adds_to_cart", DisplayName: "Adições ao Carrinho", Description: "Eventos de adicionar ao carrinho", APIField: "actions:offsite_conversion.fb_pixel_add_to_cart", Category: CategoryConversion, DataType: DataTypeInteger, AvailableLevels: allLevels, DisplayOrder: 53},
	{ID: "initiates_checkout", DisplayName: "Inícios de Checkout", Description: "Eventos de início de finalização de compra", APIField: "actions:offsite_conversion.fb_pixel_initiate_checkout", Category: CategoryConversion, DataType: DataTypeInteger, AvailableLevels: allLevels, DisplayOrder: 54},
	{ID: "registrations", DisplayName: "Cadastros", Description: "Cadastros completos atribuídos", APIField: "actions:offsite_conversion.fb_pixel_complete_registration", Category: CategoryConversion, DataType: DataTypeInteger, AvailableLevels: allLevels, DisplayOrder: 55},
	{ID: "conversations_started", DisplayName: "Conversas Iniciadas", Description: "Conversas iniciadas por mensagem", APIField: "actions:onsite_conversion.messaging_conversation_started_7d", Category: CategoryConversion, DataType: DataTypeInteger, AvailableLevels: allLevels, DisplayOrder: 56},

	// Engajamento
	{ID: "link_clicks", DisplayName: "Cliques no Link (ação)", Description: "Ações de clique em link", APIField: "actions:link_click", Category: CategoryEngagement, DataType: DataTypeInteger, AvailableLevels: allLevels, DisplayOrder: 60},
	{ID: "post_engagement", DisplayName: "Engajamento com a Publicação", Description: "Engajamentos totais com a publicação", APIField: "actions:post_engagement", Category: CategoryEngagement, DataType: DataTypeInteger, AvailableLevels: allLevels, DisplayOrder: 61},
	{ID: "page_likes", DisplayName: "Curtidas na Página", Description: "Curtidas na página atribuídas", APIField: "actions:like", Category: CategoryEngagement, DataType: DataTypeInteger, AvailableLevels: allLevels, DisplayOrder: 62},
	{ID: "post_reactions", DisplayName: "Reações", Description: "Reações na publicação", APIField: "actions:post_reaction", Category: CategoryEngagement, DataType: DataTypeInteger, AvailableLevels: allLevels, DisplayOrder: 63},
	{ID: "comments", DisplayName: "Comentários", Description: "Comentários na publicação", APIField: "actions:comment", Category: CategoryEngagement, DataType: DataTypeInteger, AvailableLevels: allLevels, DisplayOrder: 64},
	{ID: "shares", DisplayName: "Compartilhamentos", Description: "Compartilhamentos da publicação", APIField: "actions:post", Category: CategoryEngagement, DataType: DataTypeInteger, AvailableLevels: allLevels, DisplayOrder: 65},

	// Vídeo
	{ID: "video_views", DisplayName: "Visualizações de Vídeo", Description: "Visualizações de pelo menos 3 segundos", APIField: "actions:video_view", Category: CategoryVideo, DataType: DataTypeInteger, AvailableLevels: allLevels, DisplayOrder: 70},
	{ID: "thruplays", DisplayName: "ThruPlays", Description: "Vídeos assistidos até o fim ou por 15 segundos", APIField: "video_thruplay_watched_actions", Category: CategoryVideo, DataType: DataTypeInteger, AvailableLevels: allLevels, DisplayOrder: 71},
	{ID: "video_avg_time_watched", DisplayName: "Tempo Médio Assistido", Description: "Tempo médio de reprodução do vídeo", APIField: "video_avg_time_watched_actions", Category: CategoryVideo, DataType: DataTypeNumber, AvailableLevels: allLevels, DisplayOrder: 72},

	// Atribuição
	{ID: "attribution_setting", DisplayName: "Janela de Atribuição", Description: "Configuração de atribuição aplicada", APIField: "attribution_setting", Category: CategoryAttribution, DataType: DataTypeString, AvailableLevels: allLevels, DisplayOrder: 80},
}

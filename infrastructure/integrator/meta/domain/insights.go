package metadomain

// ActionEntry é um par {action_type, value} retornado pela API dentro das
// coleções actions e action_values de cada linha.
type ActionEntry struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// InsightRow é uma linha crua do relatório. As chaves variam conforme os
// campos e breakdowns pedidos, então o decode é para um mapa genérico.
type InsightRow map[string]any

// String lê um campo escalar da linha pelo nome da API
func (r InsightRow) String(key string) (string, bool) {
	value, ok := r[key]
	if !ok {
		return "", false
	}

	str, ok := value.(string)
	return str, ok
}

// Actions extrai as entradas {action_type, value} da coleção informada
// (actions ou action_values). Entradas malformadas são ignoradas.
func (r InsightRow) Actions(collection string) []ActionEntry {
	raw, ok := r[collection]
	if !ok {
		return nil
	}

	items, ok := raw.([]any)
	if !ok {
		return nil
	}

	entries := make([]ActionEntry, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}

		actionType, _ := entry["action_type"].(string)
		value, _ := entry["value"].(string)
		if actionType == "" {
			continue
		}

		entries = append(entries, ActionEntry{ActionType: actionType, Value: value})
	}

	return entries
}

// ActionValue procura o valor da ação do tipo informado dentro da coleção
func (r InsightRow) ActionValue(collection, actionType string) (string, bool) {
	for _, entry := range r.Actions(collection) {
		if entry.ActionType == actionType {
			return entry.Value, true
		}
	}
	return "", false
}

// Paging carrega os cursores de paginação da resposta
type Paging struct {
	Cursors *PagingCursors `json:"cursors,omitempty"`
	Next    string         `json:"next,omitempty"`
}

type PagingCursors struct {
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}

// InsightsResponse é o envelope de uma página do relatório de insights
type InsightsResponse struct {
	Data   []InsightRow  `json:"data"`
	Paging *Paging       `json:"paging,omitempty"`
	Error  *ErrorDetails `json:"error,omitempty"`
}

package bot

const lang = "pt"

var messages = map[string]map[string]string{
	"pt": {
		"welcome":          "👋 Olá! Bem-vindo ao cadastro de motoristas.",
		"menu":             "Escolha uma opção:",
		"btn_register":     "📝 Cadastrar motorista",
		"btn_search":       "🔎 Buscar motorista",
		"btn_cancel":       "❌ Cancelar cadastro",
		"btn_skip":         "⏭ Pular",
		"btn_send":         "✅ Enviar cadastro",
		"btn_abort":        "❌ Cancelar",
		"btn_remove":       "❌ Remover",
		"btn_top":          "⬆️ Topo",
		"btn_prev":         "◀️",
		"btn_next":         "▶️",
		"btn_open":         "🌐 Abrir cadastro",
		"btn_print":        "🖨 Imprimir",
		"btn_activate":     "✅ Ativar",
		"btn_deactivate":   "⛔ Desativar",
		"ask_nome":         "👤 Nome completo do motorista:",
		"ask_cpf":          "🪪 CPF (somente números ou xxx.xxx.xxx-xx):",
		"ask_celular":      "📱 Celular com DDD:",
		"ask_nascimento":   "🎂 Data de nascimento (dd/mm/aaaa):",
		"ask_vinculo":      "🧾 Tipo de vínculo:",
		"ask_validade_cnh": "📅 Validade da CNH (dd/mm/aaaa):",
		"ask_validade_cur": "📅 Validade do curso de transporte de passageiros (dd/mm/aaaa):",
		"ask_file":         "📎 Envie %s (JPG, PNG, GIF ou PDF, até 16MB) ou toque em Pular.",
		"cpf_partial":      "%s … continue digitando.",
		"cpf_valid":        "✅ %s",
		"cpf_invalid":      "❌ %s: CPF inválido. Digite novamente.",
		"phone_masked":     "📱 %s",
		"send_file":        "Envie um arquivo ou toque em Pular.",
		"file_removed":     "Arquivo removido.",
		"summary":          "<b>Confira os dados:</b>\n\n%s",
		"fix_field":        "✏️ Corrigir %s",
		"submitting":       "⏳ Enviando cadastro...",
		"registered":       "Motorista cadastrado com sucesso!",
		"register_failed":  "Erro ao cadastrar motorista. Tente novamente.",
		"register_bounced": "O servidor recusou o cadastro. Verifique se o CPF já está cadastrado.",
		"cancelled":        "Cadastro cancelado.",
		"no_draft":         "Nenhum cadastro em andamento.",
		"ask_search":       "🔎 Digite o nome ou CPF do motorista:",
		"search_expired":   "A busca expirou. Faça uma nova busca.",
		"driver_missing":   "Motorista não encontrado.",
		"error":            "Ocorreu um erro. Tente novamente.",
	},
}

var fieldLabels = map[string]string{
	"nome":                   "Nome",
	"cpf":                    "CPF",
	"celular":                "Celular",
	"data_nascimento":        "Data de nascimento",
	"tipo_vinculo":           "Tipo de vínculo",
	"validade_cnh":           "Validade da CNH",
	"validade_curso":         "Validade do curso",
	"foto":                   "a foto do motorista",
	"cnh":                    "a CNH",
	"curso_passageiro":       "o certificado do curso de passageiros",
	"comprovante_residencia": "o comprovante de residência",
}

func msg(key string) string {
	return messages[lang][key]
}

package models

// Driver is the record returned by the registration server's /buscar
// endpoint. Only id, nome, cpf and celular are guaranteed; the rest are
// present when the server has them.
type Driver struct {
	ID             string            `json:"id"`
	Nome           string            `json:"nome"`
	CPF            string            `json:"cpf"`
	Celular        string            `json:"celular"`
	DataNascimento string            `json:"data_nascimento,omitempty"`
	TipoVinculo    string            `json:"tipo_vinculo,omitempty"`
	ValidadeCNH    string            `json:"validade_cnh,omitempty"`
	ValidadeCurso  string            `json:"validade_curso,omitempty"`
	DataCadastro   string            `json:"data_cadastro,omitempty"`
	Status         string            `json:"status,omitempty"` // ativo, inativo
	Arquivos       map[string]string `json:"arquivos,omitempty"`
}

const (
	StatusAtivo   = "ativo"
	StatusInativo = "inativo"
)

const (
	VinculoRegistrado   = "registrado"
	VinculoTerceirizado = "terceirizado"
)

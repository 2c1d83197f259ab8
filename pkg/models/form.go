package models

// Form field names as the registration server expects them.
const (
	FieldNome           = "nome"
	FieldCPF            = "cpf"
	FieldCelular        = "celular"
	FieldDataNascimento = "data_nascimento"
	FieldTipoVinculo    = "tipo_vinculo"
	FieldValidadeCNH    = "validade_cnh"
	FieldValidadeCurso  = "validade_curso"
)

// Upload slots accepted by POST /cadastro.
const (
	SlotFoto                  = "foto"
	SlotCNH                   = "cnh"
	SlotCursoPassageiro       = "curso_passageiro"
	SlotComprovanteResidencia = "comprovante_residencia"
)

// UploadSlots lists the file slots in the order the form asks for them.
var UploadSlots = []string{SlotFoto, SlotCNH, SlotCursoPassageiro, SlotComprovanteResidencia}

type RegistrationForm struct {
	Nome           string `json:"nome"`
	CPF            string `json:"cpf"`
	Celular        string `json:"celular"`
	DataNascimento string `json:"data_nascimento,omitempty"`
	TipoVinculo    string `json:"tipo_vinculo,omitempty"`
	ValidadeCNH    string `json:"validade_cnh,omitempty"`
	ValidadeCurso  string `json:"validade_curso,omitempty"`
}

// Values returns the form as multipart field/value pairs.
func (f RegistrationForm) Values() map[string]string {
	return map[string]string{
		FieldNome:           f.Nome,
		FieldCPF:            f.CPF,
		FieldCelular:        f.Celular,
		FieldDataNascimento: f.DataNascimento,
		FieldTipoVinculo:    f.TipoVinculo,
		FieldValidadeCNH:    f.ValidadeCNH,
		FieldValidadeCurso:  f.ValidadeCurso,
	}
}

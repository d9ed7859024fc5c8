package entity

// Department identifica una de las tres etapas fijas de la planta.
// El stock siempre vive en exactamente uno de estos departamentos.
type Department string

const (
	DepartmentRaw        Department = "raw"        // bodega de materia prima
	DepartmentProduction Department = "production" // piso de producción
	DepartmentFinished   Department = "finished"   // producto terminado
)

// AllDepartments lista los departamentos válidos en orden de pipeline.
var AllDepartments = []Department{DepartmentRaw, DepartmentProduction, DepartmentFinished}

// Valid indica si el valor corresponde a un departamento conocido.
func (d Department) Valid() bool {
	switch d {
	case DepartmentRaw, DepartmentProduction, DepartmentFinished:
		return true
	}
	return false
}

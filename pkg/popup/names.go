// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package popup

var defaultNames = [...]string{
	"Arif", "Suma", "Rohit", "Chaitali", "Bhaskar",
	"Farzana", "Ashik", "Nomita", "Soumen", "Priyanka",
	"Tanvir", "Abir", "Mamata", "Suman", "Reshmi",
	"Joyita", "Kunal", "Meghla", "Subhajit", "Rina",
	"Ananya", "Bikram", "Ishita", "Deepak", "Puja",
	"Shayan", "Riya", "Alok", "Papiya", "Nayan",
	"Swagata", "Koushik", "Sneha", "Debjit", "Liza",
	"Ayesha", "Rajesh", "Shilpi", "Tapas", "Mousumi",
	"Vikram", "Nisha", "Gautam", "Priya", "Mithun",
	"Sayantika", "Amitabha", "Sreeparna", "Aman", "Kajal",
}

// DefaultNames returns a copy of the built-in 50 name pool.
func DefaultNames() []string {
	out := make([]string, len(defaultNames))
	copy(out, defaultNames[:])
	return out
}

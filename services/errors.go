package services

// Error messages surfaced through util.FailedResponse
const (
	UNABLE_TO_FETCH_CODE_FROM_CONTEXT    = "Unable to fetch code from context"
	UNABLE_TO_FETCH_USER_TYPE            = "Unable to fetch userType from user document"
	INVALID_USER_TO_ACCESS               = "This user doesnot have access"
	PATIENT_NOT_FOUND                    = "Patient not found"
	DOCTOR_NOT_FOUND                     = "Doctor not found"
	APPOINTMENT_NOT_FOUND                = "Appointment not found"
	APPOINTMENT_FIELD_IS_EMPTY           = "Appointment field is empty"
	INVALID_APPOINTMENT_STATUS           = "Invalid appointment status"
	APPOINTMENT_ALREADY_CLOSED           = "Appointment is already cancelled or completed"
	DOCTOR_NOT_WORKING_ON_THIS_DAY       = "Doctor is not working on this day"
	INVALID_TIME_FORMAT                  = "Time must be in HH:mm format"
	INVALID_DAY_NAME                     = "Invalid day name"
	INVALID_DATE_WINDOW                  = "Invalid date window"
	LAB_TEST_NOT_FOUND                   = "Lab test not found"
	PAYMENT_NOT_FOUND                    = "Payment not found"
	NOTE_NOT_FOUND                       = "Note not found"
	EMAIL_ALREADY_REGISTERED             = "Email already registered"
	INCORRECT_PASSWORD                   = "Incorrect password"
	PLEASE_PROVIDE_EMAIL_AND_PASSWORD    = "Please provide email and password"
	UNABLE_TO_FETCH_PIPELINE_RESULT      = "Unable to fetch pipeline result"
	UNABLE_TO_FETCH_DOCTOR_FROM_SCHEDULE = "Unable to fetch doctor from schedule"
)
